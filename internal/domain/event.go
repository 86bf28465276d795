package domain

import "time"

// Event is a board entry created by an authenticated user.
type Event struct {
	ID           int64
	Name         string
	Description  string
	ContactEmail string
	CreatedBy    int64
	CreatedAt    time.Time
}
