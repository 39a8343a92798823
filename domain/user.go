package domain

import "time"

// User represents a registered account. The password hash never leaves
// the server: it is excluded from every JSON response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
