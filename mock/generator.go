package mock

import (
	"context"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

var _ schemagen.Generator = (*Generator)(nil)

// Generator is a mock implementation of schemagen.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}
