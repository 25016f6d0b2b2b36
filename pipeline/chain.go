package pipeline

import (
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Ensure ChainExtractor implements schemagen.ContentExtractor at compile time.
var _ schemagen.ContentExtractor = (ChainExtractor)(nil)

// ChainExtractor tries each content extractor in order and returns the
// first result with non-empty content. Extractors differ in which page
// structures they handle, so a second pass recovers pages the first one
// returns empty on.
type ChainExtractor []schemagen.ContentExtractor

func (c ChainExtractor) Extract(html string) (*schemagen.ContentResult, error) {
	var lastErr error
	for _, e := range c {
		res, err := e.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if res != nil && res.ContentHTML != "" {
			return res, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return &schemagen.ContentResult{}, nil
}
