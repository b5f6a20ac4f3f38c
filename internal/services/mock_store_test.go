package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storecopy-backend/internal/models"
	"storecopy-backend/internal/store"
)

// mockStore implements store.Store with overridable function fields.
// Methods without an override fail loudly so tests only exercise the
// paths they stub.
type mockStore struct {
	getUserByEmailFn     func(ctx context.Context, email string) (*models.User, error)
	getUserByIDFn        func(ctx context.Context, id uuid.UUID) (*models.User, error)
	createUserFn         func(ctx context.Context, user *models.User) error
	updateUserPasswordFn func(ctx context.Context, userID uuid.UUID, hashedPassword string) error

	createStoreFn  func(ctx context.Context, s *models.Store) error
	getStoreByIDFn func(ctx context.Context, id uuid.UUID) (*models.Store, error)
	updateStoreFn  func(ctx context.Context, arg store.UpdateStoreParams) (*models.Store, error)

	createProductFn       func(ctx context.Context, arg store.CreateProductParams) (*models.Product, error)
	getProductByIDFn      func(ctx context.Context, id, ownerID uuid.UUID) (*models.Product, error)
	listProductsByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error)
	updateProductFn       func(ctx context.Context, arg store.UpdateProductParams) (*models.Product, error)
	deleteProductFn       func(ctx context.Context, id, ownerID uuid.UUID) error

	createSavedContentFn      func(ctx context.Context, arg store.CreateSavedContentParams) (*models.SavedContent, error)
	listSavedContentByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]models.SavedContent, error)
	deleteSavedContentFn      func(ctx context.Context, id, ownerID uuid.UUID) error
	countSavedContentFn       func(ctx context.Context, ownerID uuid.UUID) (int64, error)

	createPasswordResetTokenFn   func(ctx context.Context, t *models.PasswordResetToken) error
	getPasswordResetTokenFn      func(ctx context.Context, token string) (*models.PasswordResetToken, error)
	markPasswordResetTokenUsedFn func(ctx context.Context, id uuid.UUID) error
}

var errNotStubbed = errors.New("mock: method not stubbed")

func (m *mockStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getUserByEmailFn == nil {
		return nil, errNotStubbed
	}
	return m.getUserByEmailFn(ctx, email)
}

func (m *mockStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.getUserByIDFn == nil {
		return nil, errNotStubbed
	}
	return m.getUserByIDFn(ctx, id)
}

func (m *mockStore) CreateUser(ctx context.Context, user *models.User) error {
	if m.createUserFn == nil {
		return errNotStubbed
	}
	return m.createUserFn(ctx, user)
}

func (m *mockStore) UpdateUserPassword(ctx context.Context, userID uuid.UUID, hashedPassword string) error {
	if m.updateUserPasswordFn == nil {
		return errNotStubbed
	}
	return m.updateUserPasswordFn(ctx, userID, hashedPassword)
}

func (m *mockStore) CreateStore(ctx context.Context, s *models.Store) error {
	if m.createStoreFn == nil {
		return errNotStubbed
	}
	return m.createStoreFn(ctx, s)
}

func (m *mockStore) GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	if m.getStoreByIDFn == nil {
		return nil, errNotStubbed
	}
	return m.getStoreByIDFn(ctx, id)
}

func (m *mockStore) UpdateStore(ctx context.Context, arg store.UpdateStoreParams) (*models.Store, error) {
	if m.updateStoreFn == nil {
		return nil, errNotStubbed
	}
	return m.updateStoreFn(ctx, arg)
}

func (m *mockStore) CreateProduct(ctx context.Context, arg store.CreateProductParams) (*models.Product, error) {
	if m.createProductFn == nil {
		return nil, errNotStubbed
	}
	return m.createProductFn(ctx, arg)
}

func (m *mockStore) GetProductByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Product, error) {
	if m.getProductByIDFn == nil {
		return nil, errNotStubbed
	}
	return m.getProductByIDFn(ctx, id, ownerID)
}

func (m *mockStore) ListProductsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error) {
	if m.listProductsByOwnerFn == nil {
		return nil, errNotStubbed
	}
	return m.listProductsByOwnerFn(ctx, ownerID)
}

func (m *mockStore) UpdateProduct(ctx context.Context, arg store.UpdateProductParams) (*models.Product, error) {
	if m.updateProductFn == nil {
		return nil, errNotStubbed
	}
	return m.updateProductFn(ctx, arg)
}

func (m *mockStore) DeleteProduct(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.deleteProductFn == nil {
		return errNotStubbed
	}
	return m.deleteProductFn(ctx, id, ownerID)
}

func (m *mockStore) CreateSavedContent(ctx context.Context, arg store.CreateSavedContentParams) (*models.SavedContent, error) {
	if m.createSavedContentFn == nil {
		return nil, errNotStubbed
	}
	return m.createSavedContentFn(ctx, arg)
}

func (m *mockStore) ListSavedContentByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.SavedContent, error) {
	if m.listSavedContentByOwnerFn == nil {
		return nil, errNotStubbed
	}
	return m.listSavedContentByOwnerFn(ctx, ownerID)
}

func (m *mockStore) DeleteSavedContent(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.deleteSavedContentFn == nil {
		return errNotStubbed
	}
	return m.deleteSavedContentFn(ctx, id, ownerID)
}

func (m *mockStore) CountSavedContentByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if m.countSavedContentFn == nil {
		return 0, errNotStubbed
	}
	return m.countSavedContentFn(ctx, ownerID)
}

func (m *mockStore) CreatePasswordResetToken(ctx context.Context, t *models.PasswordResetToken) error {
	if m.createPasswordResetTokenFn == nil {
		return errNotStubbed
	}
	return m.createPasswordResetTokenFn(ctx, t)
}

func (m *mockStore) GetPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	if m.getPasswordResetTokenFn == nil {
		return nil, errNotStubbed
	}
	return m.getPasswordResetTokenFn(ctx, token)
}

func (m *mockStore) MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	if m.markPasswordResetTokenUsedFn == nil {
		return errNotStubbed
	}
	return m.markPasswordResetTokenUsedFn(ctx, id)
}
