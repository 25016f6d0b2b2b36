package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	main "github.com/mohyeeCT/schema-generator-llm/cmd/schemagen"
	"github.com/mohyeeCT/schema-generator-llm/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(service schemagen.MarkupService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Service:   service,
		Templates: schemagen.NewTemplateRegistry(),
	}, stdout, stderr
}

func serviceReturning(result *schemagen.GenerateResult) schemagen.MarkupService {
	return &mock.MarkupService{
		GenerateFn: func(ctx context.Context, req schemagen.GenerateRequest) (*schemagen.GenerateResult, error) {
			return result, nil
		},
	}
}

func TestGenerateCmd(t *testing.T) {
	t.Parallel()

	result := &schemagen.GenerateResult{
		URL:              "https://acme.example/",
		DetectedPageType: schemagen.PageTypeHomepage,
		PageType:         schemagen.PageTypeHomepage,
		Category:         schemagen.CategoryOrganization,
		Markup: schemagen.Markup{
			"@context": schemagen.SchemaContext,
			"@type":    "Organization",
			"name":     "Acme",
			"url":      "https://acme.example/",
		},
		Source: schemagen.SourceTemplate,
	}

	t.Run("prints markup to stdout and summary to stderr", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(serviceReturning(result))
		cmd := &main.GenerateCmd{URL: "https://acme.example/"}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), `"@type": "Organization"`)
		assert.Contains(t, stderr.String(), "Page type: Homepage")
		assert.Contains(t, stderr.String(), "Schema type: Organization")
		assert.Contains(t, stderr.String(), "Quality:")
	})

	t.Run("writes markup to a file with --output", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(serviceReturning(result))
		path := filepath.Join(t.TempDir(), "out.jsonld")
		cmd := &main.GenerateCmd{URL: "https://acme.example/", Output: path}

		require.NoError(t, cmd.Run(deps))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"@type": "Organization"`)
		assert.Empty(t, stdout.String())
	})

	t.Run("reports the model fallback reason", func(t *testing.T) {
		t.Parallel()

		fallback := *result
		fallback.ModelError = "model unavailable"
		deps, _, stderr := testDeps(serviceReturning(&fallback))
		cmd := &main.GenerateCmd{URL: "https://acme.example/"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "Model fallback: model unavailable")
	})

	t.Run("surfaces service errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(&mock.MarkupService{
			GenerateFn: func(ctx context.Context, req schemagen.GenerateRequest) (*schemagen.GenerateResult, error) {
				return nil, schemagen.Errorf(schemagen.EUNAVAILABLE, "dns failure")
			},
		})
		cmd := &main.GenerateCmd{URL: "https://unreachable.example/"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "dns failure")
	})
}

func TestTemplatesCmd(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps(nil)
	cmd := &main.TemplatesCmd{}

	require.NoError(t, cmd.Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "Organization")
	assert.Contains(t, out, "Recipe")
	assert.Contains(t, out, "EntitySchema")
}
