package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"storecopy-backend/internal/models"
)

// GatewayError wraps any provider or transport failure from the model
// API. Callers log the wrapped detail and surface only a generic message
// to API clients.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("ai gateway: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// OpenAIGateway calls the OpenAI chat completions API for text-only and
// text+image generation. It holds no local state beyond the client; every
// call is an independent outbound request.
type OpenAIGateway struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

func NewOpenAIGateway(apiKey, model string, maxTokens int, temperature float32, timeout time.Duration) *OpenAIGateway {
	return &OpenAIGateway{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
	}
}

// GenerateFromText performs a single-turn text completion.
func (g *OpenAIGateway) GenerateFromText(ctx context.Context, prompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}
	return g.complete(ctx, "GenerateFromText", messages)
}

// GenerateFromTextAndImage performs a multimodal completion. The image is
// base64-encoded into a data URL tagged with its media type.
func (g *OpenAIGateway) GenerateFromTextAndImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	messages := []openai.ChatCompletionMessage{userMessageWithImage(prompt, image, mimeType)}
	return g.complete(ctx, "GenerateFromTextAndImage", messages)
}

// GenerateFromHistory performs a multi-turn completion: prior turns in
// conversation order, then the new user prompt with an optional image.
func (g *OpenAIGateway) GenerateFromHistory(ctx context.Context, history []models.ChatHistoryItem, prompt string, image []byte, mimeType string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, item := range history {
		role := openai.ChatMessageRoleUser
		if item.Role == models.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: item.Content})
	}

	if len(image) > 0 {
		messages = append(messages, userMessageWithImage(prompt, image, mimeType))
	} else {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})
	}

	return g.complete(ctx, "GenerateFromHistory", messages)
}

func userMessageWithImage(prompt string, image []byte, mimeType string) openai.ChatCompletionMessage {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: prompt},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
		},
	}
}

// complete sends the request with a bounded timeout and retries once on a
// transient failure (transport error, 429, or 5xx).
func (g *OpenAIGateway) complete(ctx context.Context, op string, messages []openai.ChatCompletionMessage) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		text, err := g.completeOnce(ctx, messages)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !isTransient(err) {
			break
		}
	}
	return "", &GatewayError{Op: op, Err: lastErr}
}

func (g *OpenAIGateway) completeOnce(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func isTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	// Transport-level failures (timeouts, connection resets) carry no
	// API status and are worth one more attempt.
	return !errors.Is(err, context.Canceled)
}
