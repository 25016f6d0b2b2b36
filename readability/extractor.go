// Package readability provides a schemagen.ContentExtractor backed by
// go-readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Ensure Extractor implements schemagen.ContentExtractor at compile time.
var _ schemagen.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*schemagen.ContentResult, error) {
	if rawHTML == "" {
		return nil, schemagen.Errorf(schemagen.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &schemagen.ContentResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
