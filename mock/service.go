package mock

import (
	"context"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

var _ schemagen.MarkupService = (*MarkupService)(nil)

// MarkupService is a mock implementation of schemagen.MarkupService.
type MarkupService struct {
	GenerateFn func(ctx context.Context, req schemagen.GenerateRequest) (*schemagen.GenerateResult, error)
}

func (s *MarkupService) Generate(ctx context.Context, req schemagen.GenerateRequest) (*schemagen.GenerateResult, error) {
	return s.GenerateFn(ctx, req)
}
