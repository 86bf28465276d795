package domain

import "time"

// User represents one registered principal. PasswordHash is the only
// credential material ever stored; raw passwords never leave the request
// that carried them.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
