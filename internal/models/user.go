package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserResource is the public representation of a user returned by the API.
// swagger:model UserResource
type UserResource struct {
	// User ID
	ID uuid.UUID `json:"id"`

	// Display name
	// default: John Doe
	Name string `json:"name"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Creation timestamp
	CreatedAt time.Time `json:"createdAt"`

	// Last update timestamp
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResource maps a database user row to its public representation.
func NewUserResource(u *UserDB) *UserResource {
	if u == nil {
		return nil
	}
	return &UserResource{
		ID:        u.UserID,
		Name:      u.Name,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
