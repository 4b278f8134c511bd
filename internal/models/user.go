package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`             // Primary key
	Username     string    `json:"username" db:"username"`      // Unique username
	Email        string    `json:"email" db:"email"`            // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`        // Hashed password
	CreatedAt    time.Time `json:"created_at" db:"created_at"`  // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`  // Last update timestamp
}

// ProfileDB represents a profile record in the database.
// Exactly one profile exists per user, created alongside the account.
type ProfileDB struct {
	ProfileID uuid.UUID `json:"id" db:"profile_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Bio       *string   `json:"bio" db:"bio"`
	AvatarURL *string   `json:"avatarUrl" db:"avatar_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ProfileSnippet is the embedded profile view returned with users and tweet authors.
type ProfileSnippet struct {
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}

// UserInfo is the public view of a user account.
type UserInfo struct {
	ID       uuid.UUID      `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Profile  ProfileSnippet `json:"profile"`
}

// FeedUserRowDB is one user search hit joined with its profile snippet,
// carrying created_at as cursor material.
type FeedUserRowDB struct {
	UserID    uuid.UUID `db:"user_id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	Bio       *string   `db:"bio"`
	AvatarURL *string   `db:"avatar_url"`
}

// UserPage is one page of a cursor-paginated user search.
type UserPage struct {
	Items      []UserInfo
	NextCursor *Cursor
}
