package credentials

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
)

const (
	passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// PasswordLength длина сгенерированного пароля
	PasswordLength = 10
)

// GeneratePassword возвращает случайный пароль из латинских букв и цифр
func GeneratePassword() string {
	var sb strings.Builder
	sb.Grow(PasswordLength)
	max := big.NewInt(int64(len(passwordChars)))
	for i := 0; i < PasswordLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand на исправной системе не отказывает
			panic(err)
		}
		sb.WriteByte(passwordChars[n.Int64()])
	}
	return sb.String()
}

// GenerateUsername строит username вида first.last, при коллизии добавляет
// числовой суффикс начиная с 1. Сравнение с existing регистронезависимое.
func GenerateUsername(firstName, lastName string, existing []string) string {
	base := strings.ToLower(strings.TrimSpace(firstName)) + "." + strings.ToLower(strings.TrimSpace(lastName))

	taken := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		taken[strings.ToLower(name)] = struct{}{}
	}

	username := base
	for counter := 1; ; counter++ {
		if _, ok := taken[strings.ToLower(username)]; !ok {
			return username
		}
		username = base + strconv.Itoa(counter)
	}
}
