package models

import "time"

// User represents a user account in the system.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
