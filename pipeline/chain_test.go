package pipeline_test

import (
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/mohyeeCT/schema-generator-llm/mock"
	"github.com/mohyeeCT/schema-generator-llm/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty result", func(t *testing.T) {
		t.Parallel()

		chain := pipeline.ChainExtractor{
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					return &schemagen.ContentResult{ContentHTML: "<p>first</p>"}, nil
				},
			},
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					t.Fatal("second extractor should not be called")
					return nil, nil
				},
			},
		}

		res, err := chain.Extract("<html></html>")
		require.NoError(t, err)
		assert.Equal(t, "<p>first</p>", res.ContentHTML)
	})

	t.Run("falls through on empty content", func(t *testing.T) {
		t.Parallel()

		chain := pipeline.ChainExtractor{
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					return &schemagen.ContentResult{}, nil
				},
			},
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					return &schemagen.ContentResult{ContentHTML: "<p>second</p>"}, nil
				},
			},
		}

		res, err := chain.Extract("<html></html>")
		require.NoError(t, err)
		assert.Equal(t, "<p>second</p>", res.ContentHTML)
	})

	t.Run("falls through on error", func(t *testing.T) {
		t.Parallel()

		chain := pipeline.ChainExtractor{
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					return nil, schemagen.Errorf(schemagen.EINVALID, "unparseable")
				},
			},
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					return &schemagen.ContentResult{ContentHTML: "<p>second</p>"}, nil
				},
			},
		}

		res, err := chain.Extract("<html></html>")
		require.NoError(t, err)
		assert.Equal(t, "<p>second</p>", res.ContentHTML)
	})

	t.Run("returns last error when every extractor fails", func(t *testing.T) {
		t.Parallel()

		chain := pipeline.ChainExtractor{
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					return nil, schemagen.Errorf(schemagen.EINVALID, "first")
				},
			},
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					return nil, schemagen.Errorf(schemagen.EINTERNAL, "second")
				},
			},
		}

		_, err := chain.Extract("<html></html>")
		require.Error(t, err)
		assert.Equal(t, schemagen.EINTERNAL, schemagen.ErrorCode(err))
	})

	t.Run("empty result when nothing matched and nothing failed", func(t *testing.T) {
		t.Parallel()

		chain := pipeline.ChainExtractor{
			&mock.ContentExtractor{
				ExtractFn: func(html string) (*schemagen.ContentResult, error) {
					return &schemagen.ContentResult{}, nil
				},
			},
		}

		res, err := chain.Extract("<html></html>")
		require.NoError(t, err)
		assert.Empty(t, res.ContentHTML)
	})
}
