package domain

import "time"

// Account is a registered author. The username is unique and immutable
// after creation; the password only ever exists here as its argon2 hash.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
