package htmltomarkdown_test

import (
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/mohyeeCT/schema-generator-llm/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements schemagen.Converter at compile time.
var _ schemagen.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert("<h1>Title</h1><p>Some <strong>bold</strong> text.</p>")
		require.NoError(t, err)

		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "**bold**")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert(`<p><a href="https://example.com">example</a></p>`)
		require.NoError(t, err)

		assert.Contains(t, md, "[example](https://example.com)")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		_, err := c.Convert("   ")
		require.Error(t, err)
		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})
}
