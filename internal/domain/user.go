package domain

import (
	"time"
)

// User is a trainer account that can sign in to the console.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Should be unique
	PasswordHash string    `json:"-"`     // Never expose this via JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
