package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"storecopy-backend/internal/ai"
	"storecopy-backend/internal/models"
)

// ErrGateway marks a failed call to the generative model provider. The
// provider detail is logged where the error is caught; callers surface
// only a generic message.
var ErrGateway = errors.New("content generation failed")

// Image constraints for the image-based generation path.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// TextGenerator defines the interface expected from the AI gateway.
type TextGenerator interface {
	GenerateFromText(ctx context.Context, prompt string) (string, error)
	GenerateFromTextAndImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
	GenerateFromHistory(ctx context.Context, history []models.ChatHistoryItem, prompt string, image []byte, mimeType string) (string, error)
}

// GenerationService orchestrates content generation: validate the input,
// build the prompt, call the gateway, best-effort parse the reply. It
// never persists anything; saving is an explicit caller action through
// the content service.
type GenerationService struct {
	gateway       TextGenerator
	maxImageBytes int64
}

func NewGenerationService(gateway TextGenerator, maxImageBytes int64) *GenerationService {
	return &GenerationService{
		gateway:       gateway,
		maxImageBytes: maxImageBytes,
	}
}

// GenerateWithImage handles the prompt+image path. Both fields are
// required; the image must be JPEG/PNG/WebP and under the byte ceiling.
func (s *GenerationService) GenerateWithImage(ctx context.Context, prompt string, image []byte) (*models.GenerationResponse, error) {
	fieldErrs := FieldErrors{}
	prompt = validatePrompt(prompt, fieldErrs)
	mimeType := s.validateImage(image, true, fieldErrs)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	raw, err := s.gateway.GenerateFromTextAndImage(ctx, prompt, image, mimeType)
	if err != nil {
		log.Printf("ERROR [GenerationService] GenerateWithImage: gateway call failed: %v", err)
		return nil, ErrGateway
	}

	return buildResponse(raw), nil
}

// GenerateWithoutImage handles the text-only path.
func (s *GenerationService) GenerateWithoutImage(ctx context.Context, prompt string) (*models.GenerationResponse, error) {
	fieldErrs := FieldErrors{}
	prompt = validatePrompt(prompt, fieldErrs)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	raw, err := s.gateway.GenerateFromText(ctx, prompt)
	if err != nil {
		log.Printf("ERROR [GenerationService] GenerateWithoutImage: gateway call failed: %v", err)
		return nil, ErrGateway
	}

	return buildResponse(raw), nil
}

// GenerateWithContext handles the contextual path: prior chat turns,
// optional image, platform and mode. Unknown platforms degrade to
// unspecified and unknown modes to standard instead of failing.
func (s *GenerationService) GenerateWithContext(ctx context.Context, req models.GenerateContextRequest) (*models.GenerationResponse, error) {
	fieldErrs := FieldErrors{}
	userPrompt := validatePrompt(req.Prompt, fieldErrs)

	var image []byte
	if req.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			fieldErrs.Add("image", "image must be valid base64")
		} else {
			image = decoded
		}
	}
	mimeType := s.validateImage(image, false, fieldErrs)

	for i, item := range req.History {
		if item.Role != models.ChatRoleUser && item.Role != models.ChatRoleAssistant {
			fieldErrs.Add("history", fmt.Sprintf("history[%d]: role must be %q or %q", i, models.ChatRoleUser, models.ChatRoleAssistant))
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	platform := models.ParsePlatform(req.Platform)
	mode := models.ParseMode(req.Mode)

	prompt := ai.BuildContentPrompt(ai.PromptParams{
		Platform: platform,
		Mode:     mode,
		Context:  userPrompt,
	})

	raw, err := s.gateway.GenerateFromHistory(ctx, req.History, prompt, image, mimeType)
	if err != nil {
		log.Printf("ERROR [GenerationService] GenerateWithContext: gateway call failed: %v", err)
		return nil, ErrGateway
	}

	return buildResponse(raw), nil
}

// validatePrompt trims and checks the prompt, recording a field error
// when it is empty. Returns the trimmed prompt.
func validatePrompt(prompt string, fieldErrs FieldErrors) string {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		fieldErrs.Add("prompt", "prompt cannot be empty")
	}
	return trimmed
}

// validateImage checks media type and size. When required is false an
// absent image is fine. Returns the detected media type.
func (s *GenerationService) validateImage(image []byte, required bool, fieldErrs FieldErrors) string {
	if len(image) == 0 {
		if required {
			fieldErrs.Add("image", "image is required")
		}
		return ""
	}

	if s.maxImageBytes > 0 && int64(len(image)) > s.maxImageBytes {
		fieldErrs.Add("image", fmt.Sprintf("image exceeds the %d byte limit", s.maxImageBytes))
		return ""
	}

	mimeType := http.DetectContentType(image)
	if _, ok := allowedImageTypes[mimeType]; !ok {
		fieldErrs.Add("image", "image must be JPEG, PNG or WebP")
		return ""
	}

	return mimeType
}

// buildResponse attaches structured content when the raw reply contains
// a parseable object. Parse failure is a degradation, never an error:
// the caller always gets the raw message.
func buildResponse(raw string) *models.GenerationResponse {
	return &models.GenerationResponse{
		Message:           raw,
		StructuredContent: ai.ExtractStructured(raw),
	}
}
