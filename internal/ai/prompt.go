package ai

import (
	"fmt"
	"strings"

	"storecopy-backend/internal/models"
)

// PromptParams carries the content-generation intent the prompt is built
// from. All fields except Context are optional.
type PromptParams struct {
	Platform models.Platform
	Mode     models.Mode
	// Context is the caller-supplied request text (product pitch, theme,
	// or free-form instruction).
	Context string
	// Optional product attributes folded into the instruction.
	ProductName        string
	ProductDescription string
	// Optional headline to keep, or a description of an attached image.
	Headline         string
	ImageDescription string
}

// BuildContentPrompt renders the single instruction string sent to the
// model. Pure string assembly: deterministic for identical inputs, no
// validation, no I/O. It always demands the fixed JSON object shape so
// the extractor has something to find.
func BuildContentPrompt(p PromptParams) string {
	var sb strings.Builder

	sb.WriteString("You are a marketing copywriter for a small online store. ")
	sb.WriteString("Write ")
	sb.WriteString(platformTone(p.Platform))
	sb.WriteString(".\n\n")

	if p.ProductName != "" {
		sb.WriteString(fmt.Sprintf("Product: %s\n", p.ProductName))
	}
	if p.ProductDescription != "" {
		sb.WriteString(fmt.Sprintf("Product details: %s\n", p.ProductDescription))
	}
	if p.Headline != "" {
		sb.WriteString(fmt.Sprintf("Keep this headline: %s\n", p.Headline))
	}
	if p.ImageDescription != "" {
		sb.WriteString(fmt.Sprintf("The attached image shows: %s\n", p.ImageDescription))
	}
	if p.Context != "" {
		sb.WriteString(fmt.Sprintf("Request: %s\n", p.Context))
	}

	sb.WriteString("\n")
	sb.WriteString(modeDirective(p.Mode))
	sb.WriteString("\n\n")

	sb.WriteString(`Return the response as a JSON object with this structure:
{
    "headline": "short_attention_grabbing_headline",
    "description": "main_marketing_copy",
    "cta": "call_to_action",
    "hashtags": ["#tag1", "#tag2", ...]
}`)

	return sb.String()
}

func platformTone(platform models.Platform) string {
	switch platform {
	case models.PlatformInstagram:
		return "an engaging, visual-first Instagram caption with a warm tone"
	case models.PlatformWhatsApp:
		return "a friendly, personal WhatsApp broadcast message that reads like a note to a regular customer"
	case models.PlatformShopee:
		return "a sales-driven Shopee product listing that highlights price and value"
	case models.PlatformFacebook:
		return "a community-oriented Facebook post that invites comments"
	case models.PlatformTwitter:
		return "a punchy post that fits comfortably under 280 characters"
	default:
		return "social media marketing copy with a clear, upbeat tone"
	}
}

func modeDirective(mode models.Mode) string {
	switch mode {
	case models.ModeConcise:
		return "Keep every field short. One sentence for the description, three hashtags at most."
	case models.ModePersuasive:
		return "Lean into urgency and benefits. Make the call to action hard to ignore."
	default:
		return "Balance information and appeal. Use natural language a store owner would be proud to post."
	}
}
