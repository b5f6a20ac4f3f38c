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

// Custom errors for store service
var ErrStoreNotFound = errors.New("store not found")

// StoreService manages the owner's store profile.
type StoreService struct {
	store store.Store
}

func NewStoreService(s store.Store) *StoreService {
	return &StoreService{store: s}
}

func mapStoreToResponse(st *models.Store) *models.StoreResponse {
	return &models.StoreResponse{
		ID:          st.ID,
		Name:        st.Name,
		Description: st.Description,
		Category:    st.Category,
		LogoURL:     st.LogoURL,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}

// Get retrieves the authenticated owner's store profile.
func (s *StoreService) Get(ctx context.Context, storeID uuid.UUID) (*models.StoreResponse, error) {
	st, err := s.store.GetStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		log.Printf("ERROR [StoreService] Get: Store call failed for ID %s: %v", storeID, err)
		return nil, fmt.Errorf("failed to retrieve store: %w", err)
	}
	return mapStoreToResponse(st), nil
}

// Update replaces the store profile fields.
func (s *StoreService) Update(ctx context.Context, storeID uuid.UUID, req models.UpdateStoreRequest) (*models.StoreResponse, error) {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrs.Add("name", "name cannot be empty")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	st, err := s.store.UpdateStore(ctx, store.UpdateStoreParams{
		ID:          storeID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		log.Printf("ERROR [StoreService] Update: Store call failed for ID %s: %v", storeID, err)
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	log.Printf("[StoreService] Update: Successfully updated store ID %s", storeID)
	return mapStoreToResponse(st), nil
}
