package models

// User defines the user model based on the 'users' table
type User struct {
	ID           int64  `json:"user_id" db:"user_id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"` // excluded from JSON
	Role         Role   `json:"role" db:"role"`
}

// UserSortFields is the whitelist of columns users may be sorted or searched
// by. Admin-only listing; the password hash is never exposed.
var UserSortFields = []string{"username", "email", "role"}
