package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"storecopy-backend/internal/auth"
	"storecopy-backend/internal/models"
	"storecopy-backend/pkg/httputil"
)

// Uploader defines the interface expected from the image storage backend.
type Uploader interface {
	Upload(ctx context.Context, contentType string, data []byte) (string, error)
}

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type UploadHandler struct {
	uploader      Uploader
	maxImageBytes int64
}

func NewUploadHandler(uploader Uploader, maxImageBytes int64) *UploadHandler {
	return &UploadHandler{
		uploader:      uploader,
		maxImageBytes: maxImageBytes,
	}
}

// HandleUploadImage handles POST /v1/uploads.
// Multipart form with an "image" file field.
func (h *UploadHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.GetUserIDFromContext(r.Context()); !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	if err := r.ParseMultipartForm(h.maxImageBytes + 1); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			httputil.RespondError(w, http.StatusBadRequest, "Image file is required")
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "Invalid image upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Could not read uploaded image")
		return
	}
	if int64(len(data)) > h.maxImageBytes {
		httputil.RespondError(w, http.StatusBadRequest, "Image exceeds the maximum allowed size")
		return
	}

	contentType := http.DetectContentType(data)
	if !allowedUploadTypes[contentType] {
		httputil.RespondError(w, http.StatusBadRequest, "Image must be JPEG, PNG or WebP")
		return
	}

	url, err := h.uploader.Upload(r.Context(), contentType, data)
	if err != nil {
		log.Printf("ERROR [UploadHandler] HandleUploadImage: %v", err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, models.UploadResponse{URL: url})
}
