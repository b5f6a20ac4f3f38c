package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storecopy-backend/internal/models"
)

// ErrNotFound is returned when a specific record is not found, or when an
// owner-scoped query matched zero rows. Callers cannot distinguish a
// missing row from another owner's row; that is deliberate.
var ErrNotFound = errors.New("record not found")

// UpdateStoreParams contains parameters for updating a store profile.
type UpdateStoreParams struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
	LogoURL     *string
}

// CreateProductParams contains parameters for creating a catalog item.
type CreateProductParams struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Price       int64
	Category    string
	ImageURL    *string
}

// UpdateProductParams contains parameters for a partial product update.
// Nil pointers leave the column untouched.
type UpdateProductParams struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        *string
	Description *string
	Price       *int64
	Category    *string
	ImageURL    *string
}

// CreateSavedContentParams contains parameters for persisting generated
// copy. Hashtags arrive pre-serialized as a single string; the content
// service owns that contract.
type CreateSavedContentParams struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	OwnerID     uuid.UUID
	Headline    string
	Description string
	CTA         string
	Hashtags    string
	Platform    string
}

// Store defines the interface for database operations.
// This allows for mocking in tests and potential DB backend switching.
type Store interface {
	// User operations
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, hashedPassword string) error

	// Store profile operations
	CreateStore(ctx context.Context, s *models.Store) error
	GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	UpdateStore(ctx context.Context, arg UpdateStoreParams) (*models.Store, error)

	// Product operations
	CreateProduct(ctx context.Context, arg CreateProductParams) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Product, error)
	ListProductsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error)
	UpdateProduct(ctx context.Context, arg UpdateProductParams) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error

	// Saved content operations
	CreateSavedContent(ctx context.Context, arg CreateSavedContentParams) (*models.SavedContent, error)
	ListSavedContentByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.SavedContent, error)
	DeleteSavedContent(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	CountSavedContentByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Password reset operations
	CreatePasswordResetToken(ctx context.Context, t *models.PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error
}
