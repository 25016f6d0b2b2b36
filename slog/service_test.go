package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/mohyeeCT/schema-generator-llm/mock"
	schemagenslog "github.com/mohyeeCT/schema-generator-llm/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingService_Generate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.MarkupService{
		GenerateFn: func(ctx context.Context, req schemagen.GenerateRequest) (*schemagen.GenerateResult, error) {
			return &schemagen.GenerateResult{
				URL:      req.URL,
				Category: schemagen.CategoryOrganization,
				PageType: schemagen.PageTypeHomepage,
				Source:   schemagen.SourceTemplate,
			}, nil
		},
	}

	svc := schemagenslog.NewLoggingService(next, logger)
	result, err := svc.Generate(context.Background(), schemagen.GenerateRequest{URL: "https://acme.example/"})
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/", result.URL)

	out := buf.String()
	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "https://acme.example/")
	assert.Contains(t, out, "template")
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html></html>", nil
		},
	}

	f := schemagenslog.NewLoggingFetcher(next, logger)
	html, err := f.Fetch(context.Background(), "https://acme.example/")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)
	require.NoError(t, f.Close())

	assert.Contains(t, buf.String(), "fetch")
	assert.Contains(t, buf.String(), "bytes=13")
}
