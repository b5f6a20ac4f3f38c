package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"storecopy-backend/internal/auth"
	"storecopy-backend/internal/models"
	"storecopy-backend/internal/services"
	"storecopy-backend/pkg/httputil"
)

// GenerationService defines the interface expected from the content
// generation orchestrator.
type GenerationService interface {
	GenerateWithImage(ctx context.Context, prompt string, image []byte) (*models.GenerationResponse, error)
	GenerateWithoutImage(ctx context.Context, prompt string) (*models.GenerationResponse, error)
	GenerateWithContext(ctx context.Context, req models.GenerateContextRequest) (*models.GenerationResponse, error)
}

type GenerationHandler struct {
	genService    GenerationService
	maxImageBytes int64
}

func NewGenerationHandler(genSvc GenerationService, maxImageBytes int64) *GenerationHandler {
	return &GenerationHandler{
		genService:    genSvc,
		maxImageBytes: maxImageBytes,
	}
}

// HandleGenerateWithImage handles POST /v1/generate/image.
// Multipart form: "prompt" text field, "image" file field.
func (h *GenerationHandler) HandleGenerateWithImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.GetUserIDFromContext(r.Context()); !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	// One extra byte past the ceiling so the service can report the
	// limit violation as a field error instead of a broken upload.
	if err := r.ParseMultipartForm(h.maxImageBytes + 1); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	prompt := r.FormValue("prompt")

	var image []byte
	file, _, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image, err = io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Could not read uploaded image")
			return
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	resp, err := h.genService.GenerateWithImage(r.Context(), prompt, image)
	if err != nil {
		h.respondGenerationError(w, "HandleGenerateWithImage", err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, resp)
}

// HandleGenerateWithoutImage handles POST /v1/generate/text.
func (h *GenerationHandler) HandleGenerateWithoutImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.GetUserIDFromContext(r.Context()); !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	var req models.GenerateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resp, err := h.genService.GenerateWithoutImage(r.Context(), req.Prompt)
	if err != nil {
		h.respondGenerationError(w, "HandleGenerateWithoutImage", err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, resp)
}

// HandleGenerateWithContext handles POST /v1/generate/context.
func (h *GenerationHandler) HandleGenerateWithContext(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.GetUserIDFromContext(r.Context()); !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	var req models.GenerateContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resp, err := h.genService.GenerateWithContext(r.Context(), req)
	if err != nil {
		h.respondGenerationError(w, "HandleGenerateWithContext", err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, resp)
}

func (h *GenerationHandler) respondGenerationError(w http.ResponseWriter, op string, err error) {
	log.Printf("ERROR [GenerationHandler] %s: %v", op, err)
	var fieldErrs services.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		httputil.RespondFieldErrors(w, http.StatusBadRequest, fieldErrs)
	case errors.Is(err, services.ErrGateway):
		httputil.RespondError(w, http.StatusBadGateway, "Content generation is temporarily unavailable, please try again")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "Content generation failed")
	}
}
