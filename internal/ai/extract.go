package ai

import (
	"encoding/json"
	"log"
	"strings"

	"storecopy-backend/internal/models"
)

// ExtractStructured pulls a StructuredContent object out of free-form
// model output. The text may be clean JSON, JSON prefixed with a literal
// "json" token, JSON inside a ```json fence, or JSON buried in prose.
//
// Extraction is best-effort and never fails loudly: any input that does
// not yield a parseable object returns nil. The candidate span is the
// first '{' through the last '}' in the cleaned text — greedy, not
// depth-balanced — so trailing prose between objects can be captured and
// rejected by the parser. That lossiness is accepted behavior.
func ExtractStructured(raw string) *models.StructuredContent {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	// Strip markdown code fences the model likes to wrap JSON in.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	// Some replies lead with a bare "json" token before the object.
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = strings.TrimSpace(text[4:])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}

	var content models.StructuredContent
	if err := json.Unmarshal([]byte(text[start:end+1]), &content); err != nil {
		log.Printf("[AI] ExtractStructured: candidate span is not valid JSON: %v", err)
		return nil
	}

	return &content
}
