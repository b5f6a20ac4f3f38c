package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"storecopy-backend/internal/auth"
	"storecopy-backend/internal/models"
	"storecopy-backend/internal/services"
	"storecopy-backend/pkg/httputil"
)

// StoreService defines the interface expected from the store profile service.
type StoreService interface {
	Get(ctx context.Context, storeID uuid.UUID) (*models.StoreResponse, error)
	Update(ctx context.Context, storeID uuid.UUID, req models.UpdateStoreRequest) (*models.StoreResponse, error)
}

type StoreHandler struct {
	storeService StoreService
}

func NewStoreHandler(storeSvc StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeSvc,
	}
}

// HandleGetStore handles GET /v1/stores/me
func (h *StoreHandler) HandleGetStore(w http.ResponseWriter, r *http.Request) {
	storeID, ok := auth.GetStoreIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Store ID not found in token context")
		return
	}

	resp, err := h.storeService.Get(r.Context(), storeID)
	if err != nil {
		log.Printf("ERROR [StoreHandler] HandleGetStore for StoreID %s: %v", storeID, err)
		if errors.Is(err, services.ErrStoreNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
		} else {
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to get store")
		}
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, resp)
}

// HandleUpdateStore handles PUT /v1/stores/me
func (h *StoreHandler) HandleUpdateStore(w http.ResponseWriter, r *http.Request) {
	storeID, ok := auth.GetStoreIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Store ID not found in token context")
		return
	}

	var req models.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resp, err := h.storeService.Update(r.Context(), storeID, req)
	if err != nil {
		log.Printf("ERROR [StoreHandler] HandleUpdateStore for StoreID %s: %v", storeID, err)
		var fieldErrs services.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			httputil.RespondFieldErrors(w, http.StatusBadRequest, fieldErrs)
		case errors.Is(err, services.ErrStoreNotFound):
			httputil.RespondError(w, http.StatusNotFound, err.Error())
		default:
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to update store")
		}
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, resp)
}
