package readability_test

import (
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/mohyeeCT/schema-generator-llm/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements schemagen.ContentExtractor at compile time.
var _ schemagen.ContentExtractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>About Acme</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>About Acme</h1>
<p>Acme has been manufacturing precision widgets since 1954. Our factory in
Springfield produces over a million widgets a year, and our engineering team
holds more than forty patents in widget design.</p>
<p>We ship to customers in over sixty countries and maintain regional support
offices on three continents.</p>
</article>
<footer>Copyright Acme</footer>
</body>
</html>`

		e := readability.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "About Acme", result.Title)
		assert.Contains(t, result.ContentHTML, "precision widgets")
		assert.NotContains(t, result.ContentHTML, "<nav>")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		_, err := e.Extract("")
		require.Error(t, err)
		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})
}
