package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"storecopy-backend/internal/auth"
	"storecopy-backend/internal/models"
	"storecopy-backend/internal/services"
	"storecopy-backend/pkg/httputil"
)

// ContentService defines the interface expected from the saved-content service.
type ContentService interface {
	Save(ctx context.Context, req models.SaveContentRequest, ownerID, storeID uuid.UUID) (*models.ContentResponse, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]models.ContentResponse, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	Count(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type ContentHandler struct {
	contentService ContentService
}

func NewContentHandler(contentSvc ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentSvc,
	}
}

// HandleSaveContent handles POST /v1/contents
func (h *ContentHandler) HandleSaveContent(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}
	storeID, ok := auth.GetStoreIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Store ID not found in token context")
		return
	}

	var req models.SaveContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resp, err := h.contentService.Save(r.Context(), req, ownerID, storeID)
	if err != nil {
		log.Printf("ERROR [ContentHandler] HandleSaveContent for OwnerID %s: %v", ownerID, err)
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			httputil.RespondFieldErrors(w, http.StatusBadRequest, fieldErrs)
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to save content")
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, resp)
}

// HandleListContent handles GET /v1/contents
func (h *ContentHandler) HandleListContent(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	contents, err := h.contentService.List(r.Context(), ownerID)
	if err != nil {
		log.Printf("ERROR [ContentHandler] HandleListContent for OwnerID %s: %v", ownerID, err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to list content")
		return
	}

	if contents == nil {
		contents = []models.ContentResponse{}
	}
	httputil.RespondSuccess(w, http.StatusOK, contents)
}

// HandleDeleteContent handles DELETE /v1/contents/{contentID}
func (h *ContentHandler) HandleDeleteContent(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	contentIDStr := chi.URLParam(r, "contentID")
	contentID, err := uuid.Parse(contentIDStr)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid content ID format")
		return
	}

	if err := h.contentService.Delete(r.Context(), contentID, ownerID); err != nil {
		log.Printf("ERROR [ContentHandler] HandleDeleteContent for ID %s, OwnerID %s: %v", contentID, ownerID, err)
		if errors.Is(err, services.ErrContentNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
		} else {
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to delete content")
		}
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]string{"message": "Content deleted"})
}

// HandleCountContent handles GET /v1/contents/count
func (h *ContentHandler) HandleCountContent(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	count, err := h.contentService.Count(r.Context(), ownerID)
	if err != nil {
		log.Printf("ERROR [ContentHandler] HandleCountContent for OwnerID %s: %v", ownerID, err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to count content")
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, models.ContentCountResponse{Quantity: count})
}
