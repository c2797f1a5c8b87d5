package models

type User struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Username  string `db:"username" json:"username"`
	Password  string `db:"password" json:"-"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}
