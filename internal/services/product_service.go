package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"storecopy-backend/internal/models"
	"storecopy-backend/internal/store"
)

// Custom errors for product service
var ErrProductNotFound = errors.New("product not found")

// ProductService manages the owner's catalog items.
type ProductService struct {
	store store.Store
}

func NewProductService(s store.Store) *ProductService {
	return &ProductService{store: s}
}

func mapProductToResponse(p *models.Product) *models.ProductResponse {
	return &models.ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Create validates input and adds a catalog item for the owner.
func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest, ownerID, storeID uuid.UUID) (*models.ProductResponse, error) {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrs.Add("name", "name cannot be empty")
	}
	if req.Price < 0 {
		fieldErrs.Add("price", "price cannot be negative")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	params := store.CreateProductParams{
		ID:          uuid.New(),
		StoreID:     storeID,
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}

	p, err := s.store.CreateProduct(ctx, params)
	if err != nil {
		log.Printf("ERROR [ProductService] Create: Store call failed for OwnerID %s: %v", ownerID, err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("[ProductService] Create: Successfully created product ID %s for OwnerID %s", p.ID, ownerID)
	return mapProductToResponse(p), nil
}

// Get retrieves one product, scoped to the owner.
func (s *ProductService) Get(ctx context.Context, id, ownerID uuid.UUID) (*models.ProductResponse, error) {
	p, err := s.store.GetProductByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		log.Printf("ERROR [ProductService] Get: Store call failed for ID %s, OwnerID %s: %v", id, ownerID, err)
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return mapProductToResponse(p), nil
}

// List returns all of the owner's products, newest first.
func (s *ProductService) List(ctx context.Context, ownerID uuid.UUID) ([]models.ProductResponse, error) {
	rows, err := s.store.ListProductsByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("ERROR [ProductService] List: Store call failed for OwnerID %s: %v", ownerID, err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	resp := make([]models.ProductResponse, len(rows))
	for i := range rows {
		resp[i] = *mapProductToResponse(&rows[i])
	}
	return resp, nil
}

// Update applies a partial update to an owned product.
func (s *ProductService) Update(ctx context.Context, id, ownerID uuid.UUID, req models.UpdateProductRequest) (*models.ProductResponse, error) {
	fieldErrs := FieldErrors{}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		fieldErrs.Add("name", "name cannot be updated to empty")
	}
	if req.Price != nil && *req.Price < 0 {
		fieldErrs.Add("price", "price cannot be negative")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	p, err := s.store.UpdateProduct(ctx, store.UpdateProductParams{
		ID:          id,
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		log.Printf("ERROR [ProductService] Update: Store call failed for ID %s, OwnerID %s: %v", id, ownerID, err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	log.Printf("[ProductService] Update: Successfully updated product ID %s for OwnerID %s", id, ownerID)
	return mapProductToResponse(p), nil
}

// Delete removes an owned product.
func (s *ProductService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	err := s.store.DeleteProduct(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		log.Printf("ERROR [ProductService] Delete: Store call failed for ID %s, OwnerID %s: %v", id, ownerID, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	log.Printf("[ProductService] Delete: Successfully deleted product ID %s for OwnerID %s", id, ownerID)
	return nil
}
