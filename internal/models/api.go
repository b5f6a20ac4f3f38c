package models

import (
	"time"

	"github.com/google/uuid"
)

// --- Generation Enums ---

// Platform is the target distribution channel a caption is written for.
// It influences prompt phrasing only; unknown values degrade to
// PlatformUnspecified rather than failing the request.
type Platform string

const (
	PlatformInstagram   Platform = "instagram"
	PlatformWhatsApp    Platform = "whatsapp"
	PlatformShopee      Platform = "shopee"
	PlatformFacebook    Platform = "facebook"
	PlatformTwitter     Platform = "twitter"
	PlatformUnspecified Platform = "unspecified"
)

// ParsePlatform maps a raw value onto the closed platform set.
func ParsePlatform(raw string) Platform {
	switch Platform(raw) {
	case PlatformInstagram, PlatformWhatsApp, PlatformShopee, PlatformFacebook, PlatformTwitter:
		return Platform(raw)
	default:
		return PlatformUnspecified
	}
}

// Mode is a tone/style directive applied to contextual generation.
type Mode string

const (
	ModeStandard   Mode = "standard"
	ModeConcise    Mode = "concise"
	ModePersuasive Mode = "persuasive"
)

// ParseMode maps a raw value onto the closed mode set, defaulting to
// ModeStandard for anything unknown or absent.
func ParseMode(raw string) Mode {
	switch Mode(raw) {
	case ModeConcise, ModePersuasive:
		return Mode(raw)
	default:
		return ModeStandard
	}
}

// --- Chat / Generation Types ---

// Chat roles fed back to the model. Order of history items is the
// conversation order and is semantically meaningful.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatHistoryItem is one prior turn of a conversation, re-supplied in
// full by the caller on each contextual request.
type ChatHistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StructuredContent is the machine-parseable object the model is asked
// to emit. It is present on a response only when extraction succeeded.
type StructuredContent struct {
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	CTA         string   `json:"cta"`
	Hashtags    []string `json:"hashtags"`
}

// GenerateTextRequest is the body for text-only generation.
type GenerateTextRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateContextRequest is the body for contextual generation with
// optional chat history, image, platform and mode.
type GenerateContextRequest struct {
	Prompt    string            `json:"prompt"`
	History   []ChatHistoryItem `json:"history,omitempty"`
	Image     string            `json:"image,omitempty"` // base64-encoded blob
	ImageMime string            `json:"image_mime,omitempty"`
	Platform  string            `json:"platform,omitempty"`
	Mode      string            `json:"mode,omitempty"`
}

// GenerationResponse is the success payload of every generation endpoint.
// Message always carries the raw model text; StructuredContent is a
// bonus when the reply contained a parseable object.
type GenerationResponse struct {
	Message           string             `json:"message"`
	StructuredContent *StructuredContent `json:"structured_content,omitempty"`
}

// --- Auth DTOs ---

// SignupRequest defines the expected body for the signup endpoint.
type SignupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	StoreName string `json:"store_name"`
}

// LoginRequest defines the expected body for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse defines the user information returned by the API.
// Never includes the hashed password.
type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	StoreID uuid.UUID `json:"store_id"`
}

// AuthResponse defines the response body for successful authentication.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// ForgotPasswordRequest starts the password-reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the password-reset flow.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// --- Store DTOs ---

// UpdateStoreRequest updates the owner's store profile.
type UpdateStoreRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

// StoreResponse defines the data returned for a store profile.
type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- Product DTOs ---

// CreateProductRequest defines the body for creating a catalog item.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// UpdateProductRequest allows partial updates; nil fields are left as-is.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	StoreID     uuid.UUID `json:"store_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- Saved Content DTOs ---

// SaveContentRequest defines the body for persisting generated copy.
// Hashtags arrive as a sequence and are serialized to a single column
// by the content service.
type SaveContentRequest struct {
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	CTA         string   `json:"cta"`
	Hashtags    []string `json:"hashtags"`
	Platform    string   `json:"platform"`
}

// ContentResponse defines the data returned for one saved content row.
type ContentResponse struct {
	ID          uuid.UUID `json:"id"`
	StoreID     uuid.UUID `json:"store_id"`
	Headline    string    `json:"headline"`
	Description string    `json:"description"`
	CTA         string    `json:"cta"`
	Hashtags    []string  `json:"hashtags"`
	Platform    string    `json:"platform"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContentCountResponse is the dashboard summary payload.
type ContentCountResponse struct {
	Quantity int64 `json:"quantity"`
}

// --- Upload DTOs ---

// UploadResponse returns the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}
