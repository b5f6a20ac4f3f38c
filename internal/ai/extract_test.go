package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecopy-backend/internal/models"
)

func TestExtractStructured_CleanJSON(t *testing.T) {
	raw := `{"headline":"Step Up","description":"Bold red sneakers for every stride","cta":"Shop now","hashtags":["#sneakers","#style"]}`

	got := ExtractStructured(raw)

	require.NotNil(t, got)
	assert.Equal(t, "Step Up", got.Headline)
	assert.Equal(t, "Bold red sneakers for every stride", got.Description)
	assert.Equal(t, "Shop now", got.CTA)
	assert.Equal(t, []string{"#sneakers", "#style"}, got.Hashtags)
}

func TestExtractStructured_FencedJSON(t *testing.T) {
	inner := `{"headline":"H","description":"D","cta":"C","hashtags":["#a"]}`
	fenced := "```json\n" + inner + "\n```"

	fromFenced := ExtractStructured(fenced)
	fromClean := ExtractStructured(inner)

	require.NotNil(t, fromFenced)
	assert.Equal(t, fromClean, fromFenced)
}

func TestExtractStructured_LeadingJSONToken(t *testing.T) {
	raw := `json {"headline":"Step Up","description":"Bold red sneakers for every stride","cta":"Shop now","hashtags":["#sneakers","#style"]}`

	got := ExtractStructured(raw)

	require.NotNil(t, got)
	assert.Equal(t, "Step Up", got.Headline)
	assert.Equal(t, []string{"#sneakers", "#style"}, got.Hashtags)
}

func TestExtractStructured_JSONBuriedInProse(t *testing.T) {
	raw := `Sure! Here is your caption:
{"headline":"H","description":"D","cta":"C","hashtags":[]}`

	got := ExtractStructured(raw)

	require.NotNil(t, got)
	assert.Equal(t, "H", got.Headline)
}

func TestExtractStructured_Degradations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t "},
		{"no json at all", "no json here"},
		{"invalid json in braces", "{ invalid json }"},
		{"opening brace only", "text with { but no close"},
		{"closing before opening", "} nothing {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ExtractStructured(tt.raw))
		})
	}
}

func TestExtractStructured_GreedySpanIsAccepted(t *testing.T) {
	// Two objects in one reply: the greedy first-to-last span covers both
	// and fails to parse. Accepted lossy behavior, not an error.
	raw := `{"headline":"A","description":"d","cta":"c","hashtags":[]} and {"headline":"B","description":"d","cta":"c","hashtags":[]}`

	assert.Nil(t, ExtractStructured(raw))
}

func TestExtractStructured_PartialShape(t *testing.T) {
	// Missing fields are tolerated by the loose shape match.
	got := ExtractStructured(`{"headline":"only this"}`)

	require.NotNil(t, got)
	assert.Equal(t, models.StructuredContent{Headline: "only this"}, *got)
}
