package gemini_test

import (
	"testing"

	"github.com/mohyeeCT/schema-generator-llm/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config)
	require.NotNil(t, config.Temperature)
	assert.Equal(t, float32(0.2), *config.Temperature)

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Schema.org")
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "JSON-LD")
}
