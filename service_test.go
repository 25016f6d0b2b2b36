package schemagen_test

import (
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts absolute http URL", func(t *testing.T) {
		t.Parallel()

		req := schemagen.GenerateRequest{URL: "https://example.com/about"}
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()

		req := schemagen.GenerateRequest{}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})

	t.Run("rejects schemeless URL", func(t *testing.T) {
		t.Parallel()

		req := schemagen.GenerateRequest{URL: "example.com"}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})
}

func TestGenerateResult_Filename(t *testing.T) {
	t.Parallel()

	result := &schemagen.GenerateResult{
		Category: schemagen.CategoryLocalBusiness,
		PageType: schemagen.PageTypeLocation,
	}

	assert.Equal(t, "schema-localbusiness-location-store.jsonld", result.Filename())
}
