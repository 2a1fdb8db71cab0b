// internal/domain/user.go
package domain

import "time"

// User represents a registered account owner.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"` // Unique across all users
	Password  string    `db:"password" json:"-"`  // Compared by exact equality; never serialized
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewUser creates a new User instance.
func NewUser(name, email, password string) *User {
	return &User{
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
}
