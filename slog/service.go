package slog

import (
	"context"
	"log/slog"
	"time"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Ensure LoggingService implements schemagen.MarkupService.
var _ schemagen.MarkupService = (*LoggingService)(nil)

// LoggingService wraps a MarkupService with per-request logging.
type LoggingService struct {
	next   schemagen.MarkupService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next schemagen.MarkupService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Generate logs the request outcome and delegates to the wrapped service.
func (s *LoggingService) Generate(ctx context.Context, req schemagen.GenerateRequest) (result *schemagen.GenerateResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", req.URL,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"category", result.Category,
				"pageType", result.PageType,
				"source", result.Source,
			)
			if result.ModelError != "" {
				attrs = append(attrs, "modelError", result.ModelError)
			}
		}
		s.logger.Info("generate", attrs...)
	}(time.Now())
	return s.next.Generate(ctx, req)
}
