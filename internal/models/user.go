package models

import "time"

// UserDB represents a user row in the database.
type UserDB struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// AdminID is the id of the single administrator account. The first
// registered user owns post management.
const AdminID int64 = 1

// IsAdmin reports whether the user is the administrator.
func (u *UserDB) IsAdmin() bool {
	return u != nil && u.ID == AdminID
}
