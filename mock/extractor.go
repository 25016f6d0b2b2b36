package mock

import (
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

var _ schemagen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of schemagen.Extractor.
type Extractor struct {
	ExtractFn func(html string, url string) (*schemagen.ExtractionRecord, error)
}

func (e *Extractor) Extract(html string, url string) (*schemagen.ExtractionRecord, error) {
	return e.ExtractFn(html, url)
}

var _ schemagen.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of schemagen.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*schemagen.ContentResult, error)
}

func (e *ContentExtractor) Extract(html string) (*schemagen.ContentResult, error) {
	return e.ExtractFn(html)
}
