// Package pipeline orchestrates markup generation: fetch, extraction,
// page-type detection, prompt construction, model generation, and
// post-processing.
package pipeline

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Ensure Pipeline implements schemagen.MarkupService at compile time.
var _ schemagen.MarkupService = (*Pipeline)(nil)

// Pipeline runs the full generation sequence for one request. Fetcher,
// Extractor, Detector, and Templates are required. Generator is optional:
// when nil every request takes the deterministic template path.
// ContentExtractor and Converter are optional; when both are set they
// replace the extraction pass's content digest with boilerplate-free
// Markdown.
type Pipeline struct {
	Fetcher          schemagen.Fetcher
	Extractor        schemagen.Extractor
	Detector         schemagen.PageTypeDetector
	Templates        *schemagen.TemplateRegistry
	Generator        schemagen.Generator
	ContentExtractor schemagen.ContentExtractor
	Converter        schemagen.Converter
}

// Generate executes the pipeline. Validation and fetch errors abort the
// request; generation and parse errors degrade to the template fallback so
// the caller always receives markup when the page was reachable.
func (p *Pipeline) Generate(ctx context.Context, req schemagen.GenerateRequest) (*schemagen.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	html, err := p.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	rec, err := p.Extractor.Extract(html, req.URL)
	if err != nil {
		return nil, err
	}
	rec.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(html))

	p.enrichContent(rec, html)

	detected := p.Detector.Detect(html, req.URL)
	pageType := detected
	if req.PageType != "" && req.PageType != schemagen.PageTypeAuto {
		pageType = req.PageType
	}
	category := req.Category
	if category == "" || category == schemagen.CategoryAuto {
		category = schemagen.SuggestCategory(pageType)
	}

	result := &schemagen.GenerateResult{
		ID:               uuid.NewString(),
		URL:              req.URL,
		DetectedPageType: detected,
		PageType:         pageType,
		Category:         category,
		Record:           rec,
	}

	skeleton := p.Templates.Get(category)
	fallback := schemagen.PopulateTemplate(skeleton, rec, req.URL)

	if req.SkipModel || p.Generator == nil {
		result.Markup = fallback
		result.Source = schemagen.SourceTemplate
		return result, nil
	}

	prompt := schemagen.BuildPrompt(rec, req.URL, category, pageType)

	raw, err := p.Generator.Generate(ctx, prompt)
	if err != nil {
		result.Markup = fallback
		result.Source = schemagen.SourceTemplate
		result.ModelError = err.Error()
		return result, nil
	}
	result.RawModelText = raw

	parsed, err := schemagen.ParseModelOutput(raw)
	if err != nil {
		result.Markup = fallback
		result.Source = schemagen.SourceTemplate
		result.ModelError = err.Error()
		return result, nil
	}

	result.Markup = schemagen.Enhance(schemagen.Merge(fallback, parsed), rec, req.URL)
	result.Source = schemagen.SourceModel
	return result, nil
}

// enrichContent swaps the extraction pass's text digest for a
// boilerplate-free Markdown rendition when the content tooling is
// configured. Failures leave the pass output in place.
func (p *Pipeline) enrichContent(rec *schemagen.ExtractionRecord, html string) {
	if p.ContentExtractor == nil || p.Converter == nil {
		return
	}

	content, err := p.ContentExtractor.Extract(html)
	if err != nil || content.ContentHTML == "" {
		return
	}

	markdown, err := p.Converter.Convert(content.ContentHTML)
	if err != nil || markdown == "" {
		return
	}

	// Same bound as the extraction pass's digest.
	if len(markdown) > maxDigestLen {
		markdown = markdown[:maxDigestLen]
	}
	rec.Content.MainText = markdown
}

const maxDigestLen = 3000
