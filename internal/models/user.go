package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                // Primary key
	Email        string    `json:"email" db:"email"`          // Unique email
	Name         string    `json:"name" db:"name"`            // Display name
	PasswordHash string    `json:"-" db:"password_hash"`      // Hashed password, never serialized
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}
