package schemagen

import "context"

// Generator produces markup text from a prompt using a hosted model.
type Generator interface {
	// Generate sends the prompt and returns the raw model text. One call,
	// no streaming, no retry; the context bounds the call. An empty or nil
	// model response is an error, not an empty string.
	Generate(ctx context.Context, prompt string) (string, error)
}
