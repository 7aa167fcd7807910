package models

import "time"

// User is a registered account. Photographers and clients share the same
// table; the role is implied by how the row is referenced (album owner vs
// invitation client).
type User struct {
	UserID       int32     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
