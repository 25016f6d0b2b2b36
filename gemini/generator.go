// Package gemini provides a schemagen.Generator backed by Google Gemini.
package gemini

import (
	"context"
	"time"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// DefaultTimeout bounds a single generation call. The API has no inherent
// deadline, so an unresponsive backend would otherwise block the request
// indefinitely.
const DefaultTimeout = 60 * time.Second

// Ensure Generator implements schemagen.Generator at compile time.
var _ schemagen.Generator = (*Generator)(nil)

// Generator implements schemagen.Generator using Google Gemini.
type Generator struct {
	client  *genai.Client
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the per-call deadline. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{client: client, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends the prompt to the model once and returns the raw response
// text. No retries: callers fall back to deterministic template population
// on any error.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", schemagen.Errorf(schemagen.EINVALID, "prompt required")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", schemagen.Errorf(schemagen.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", schemagen.Errorf(schemagen.EINTERNAL, "gemini returned empty response")
	}

	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert Schema.org consultant. You respond with a single valid JSON-LD object and nothing else: no explanations, no markdown fences.",
			}},
		},
		Temperature: &temp,
	}
}
