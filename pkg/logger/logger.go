package logger

import "go.uber.org/zap"

// New возвращает zap-логгер в зависимости от окружения
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
