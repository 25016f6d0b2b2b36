// Package lingua provides a schemagen.LanguageDetector backed by lingua-go.
package lingua

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Ensure Detector implements schemagen.LanguageDetector at compile time.
var _ schemagen.LanguageDetector = (*Detector)(nil)

// minSampleLen guards against classifying snippets too short to carry a
// language signal.
const minSampleLen = 20

// Detector identifies the language of page text. Building the underlying
// model is expensive, so a Detector should be created once and reused.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a new Detector covering all supported languages.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the text's language, or "" when the
// sample is too short or the language cannot be determined.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if len(text) < minSampleLen {
		return ""
	}

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}

	return strings.ToLower(language.IsoCode639_1().String())
}
