// Package mock provides hand-written mocks for the schemagen interfaces.
package mock

import (
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

var _ schemagen.Converter = (*Converter)(nil)

// Converter is a mock implementation of schemagen.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ schemagen.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of schemagen.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) string
}

func (d *LanguageDetector) Detect(text string) string {
	return d.DetectFn(text)
}
