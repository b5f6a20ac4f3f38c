package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a store owner account in the database.
type User struct {
	ID             uuid.UUID `db:"id"`
	StoreID        uuid.UUID `db:"store_id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Store represents a merchant's store profile.
type Store struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	LogoURL     *string   `db:"logo_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Product represents one catalog item, owned by exactly one user/store.
type Product struct {
	ID          uuid.UUID `db:"id"`
	StoreID     uuid.UUID `db:"store_id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       int64     `db:"price"` // smallest currency unit
	Category    string    `db:"category"`
	ImageURL    *string   `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// SavedContent is one persisted piece of generated marketing copy.
// Hashtags are stored as a single comma-separated text column; the
// content service owns the join/split contract.
type SavedContent struct {
	ID          uuid.UUID `db:"id"`
	StoreID     uuid.UUID `db:"store_id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Headline    string    `db:"headline"`
	Description string    `db:"description"`
	CTA         string    `db:"cta"`
	Hashtags    string    `db:"hashtags"`
	Platform    string    `db:"platform"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// PasswordResetToken is a single-use token mailed to a user who forgot
// their password.
type PasswordResetToken struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time `db:"created_at"`
}
