package mock

import (
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

var _ schemagen.PageTypeDetector = (*PageTypeDetector)(nil)

// PageTypeDetector is a mock implementation of schemagen.PageTypeDetector.
type PageTypeDetector struct {
	DetectFn func(html string, url string) schemagen.PageType
}

func (d *PageTypeDetector) Detect(html string, url string) schemagen.PageType {
	return d.DetectFn(html, url)
}
