package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Ensure Extractor implements schemagen.Extractor at compile time.
var _ schemagen.Extractor = (*Extractor)(nil)

// Extractor runs the extraction passes over a parsed document. Passes are
// independent and order-insensitive; each treats missing elements as empty
// data and never fails.
type Extractor struct {
	language schemagen.LanguageDetector
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLanguageDetector sets a fallback language detector, consulted when
// the document declares no lang attribute.
func WithLanguageDetector(ld schemagen.LanguageDetector) Option {
	return func(e *Extractor) {
		e.language = ld
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the document once and aggregates the output of every
// pass. The only failure mode is unparseable input.
func (e *Extractor) Extract(html string, url string) (*schemagen.ExtractionRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, schemagen.Errorf(schemagen.EINVALID, "failed to parse HTML: %v", err)
	}

	rec := &schemagen.ExtractionRecord{
		URL:            url,
		Metadata:       extractMetadata(doc),
		SocialMeta:     extractSocialMeta(doc),
		Contact:        extractContact(doc),
		Business:       extractBusiness(doc),
		SocialLinks:    extractSocialLinks(doc),
		Media:          extractMedia(doc, url),
		Entity:         extractEntity(doc),
		Authors:        extractAuthors(doc),
		Publication:    extractPublication(doc),
		Content:        analyzeContent(doc),
		ExistingSchema: extractExistingSchema(doc),
	}

	if rec.Metadata.Language == "" && e.language != nil {
		rec.Metadata.Language = e.language.Detect(rec.Content.MainText)
	}

	return rec, nil
}
