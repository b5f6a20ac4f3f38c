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

// Custom errors for the content service
var ErrContentNotFound = errors.New("saved content not found")

// hashtagSeparator is the canonical separator for the single-column
// hashtag serialization. JoinHashtags and SplitHashtags are the only
// code that may reference it.
const hashtagSeparator = ","

// JoinHashtags serializes a hashtag sequence into the stored form.
// Empty entries are dropped, whitespace trimmed.
func JoinHashtags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return strings.Join(cleaned, hashtagSeparator)
}

// SplitHashtags is the inverse of JoinHashtags. An empty column yields
// an empty slice, never nil.
func SplitHashtags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, hashtagSeparator)
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// ContentService is the persistence boundary for generated copy. Every
// operation is scoped to the authenticated owner; a row belonging to a
// different owner behaves exactly like a missing row.
type ContentService struct {
	store store.Store
}

func NewContentService(s store.Store) *ContentService {
	return &ContentService{store: s}
}

func mapSavedContentToResponse(c *models.SavedContent) *models.ContentResponse {
	return &models.ContentResponse{
		ID:          c.ID,
		StoreID:     c.StoreID,
		Headline:    c.Headline,
		Description: c.Description,
		CTA:         c.CTA,
		Hashtags:    SplitHashtags(c.Hashtags),
		Platform:    c.Platform,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// Save validates and persists one piece of generated copy for the owner.
func (s *ContentService) Save(ctx context.Context, req models.SaveContentRequest, ownerID, storeID uuid.UUID) (*models.ContentResponse, error) {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(req.Headline) == "" {
		fieldErrs.Add("headline", "headline cannot be empty")
	}
	if strings.TrimSpace(req.Description) == "" {
		fieldErrs.Add("description", "description cannot be empty")
	}
	if strings.TrimSpace(req.CTA) == "" {
		fieldErrs.Add("cta", "cta cannot be empty")
	}
	hashtags := JoinHashtags(req.Hashtags)
	if hashtags == "" {
		fieldErrs.Add("hashtags", "at least one hashtag is required")
	}
	if strings.TrimSpace(req.Platform) == "" {
		fieldErrs.Add("platform", "platform cannot be empty")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	params := store.CreateSavedContentParams{
		ID:          uuid.New(),
		StoreID:     storeID,
		OwnerID:     ownerID,
		Headline:    strings.TrimSpace(req.Headline),
		Description: strings.TrimSpace(req.Description),
		CTA:         strings.TrimSpace(req.CTA),
		Hashtags:    hashtags,
		Platform:    string(models.ParsePlatform(req.Platform)),
	}

	saved, err := s.store.CreateSavedContent(ctx, params)
	if err != nil {
		log.Printf("ERROR [ContentService] Save: Store call failed for OwnerID %s: %v", ownerID, err)
		return nil, fmt.Errorf("failed to save content: %w", err)
	}

	log.Printf("[ContentService] Save: Successfully created content ID %s for OwnerID %s", saved.ID, ownerID)
	return mapSavedContentToResponse(saved), nil
}

// List returns the owner's saved content, newest first. An owner with no
// rows gets an empty slice, not nil and not an error.
func (s *ContentService) List(ctx context.Context, ownerID uuid.UUID) ([]models.ContentResponse, error) {
	rows, err := s.store.ListSavedContentByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("ERROR [ContentService] List: Store call failed for OwnerID %s: %v", ownerID, err)
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	resp := make([]models.ContentResponse, len(rows))
	for i := range rows {
		resp[i] = *mapSavedContentToResponse(&rows[i])
	}
	return resp, nil
}

// Delete removes a row only when it belongs to the owner. A non-existent
// or non-owned id signals ErrContentNotFound rather than silently
// succeeding.
func (s *ContentService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	err := s.store.DeleteSavedContent(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContentNotFound
		}
		log.Printf("ERROR [ContentService] Delete: Store call failed for ID %s, OwnerID %s: %v", id, ownerID, err)
		return fmt.Errorf("failed to delete content: %w", err)
	}
	log.Printf("[ContentService] Delete: Successfully deleted content ID %s for OwnerID %s", id, ownerID)
	return nil
}

// Count returns how many rows the owner has, for dashboard summaries.
func (s *ContentService) Count(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	count, err := s.store.CountSavedContentByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("ERROR [ContentService] Count: Store call failed for OwnerID %s: %v", ownerID, err)
		return 0, fmt.Errorf("failed to count content: %w", err)
	}
	return count, nil
}
