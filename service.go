package schemagen

import "context"

// How the final markup was produced.
const (
	SourceModel    = "model"    // model output parsed and enhanced
	SourceTemplate = "template" // deterministic template fallback
)

// GenerateRequest describes one user-triggered generation.
type GenerateRequest struct {
	// URL must be absolute with an http or https scheme.
	URL string `json:"url"`

	// Category selects the markup skeleton; CategoryAuto (or empty) means
	// suggest from the detected page type.
	Category Category `json:"category"`

	// PageType overrides detection; PageTypeAuto (or empty) means detect.
	PageType PageType `json:"pageType"`

	// SkipModel forces the deterministic template path without calling the
	// model.
	SkipModel bool `json:"skipModel"`
}

// Validate returns an error if the request contains invalid fields.
func (r *GenerateRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "URL required")
	}
	if !HasHTTPScheme(r.URL) {
		return Errorf(EINVALID, "URL must start with http:// or https://")
	}
	return nil
}

// GenerateResult is the outcome of a pipeline run.
type GenerateResult struct {
	ID               string            `json:"id"`
	URL              string            `json:"url"`
	DetectedPageType PageType          `json:"detectedPageType"`
	PageType         PageType          `json:"pageType"`
	Category         Category          `json:"category"`
	Markup           Markup            `json:"markup"`
	Record           *ExtractionRecord `json:"record"`
	Source           string            `json:"source"`

	// RawModelText is retained for diagnostics whenever the model was
	// called, in particular when its output could not be parsed.
	RawModelText string `json:"rawModelText,omitempty"`

	// ModelError describes why the pipeline fell back to the template
	// path, when it did.
	ModelError string `json:"modelError,omitempty"`
}

// Filename derives the download filename from the resolved category and
// page type, e.g. "schema-organization-about-us.jsonld".
func (r *GenerateResult) Filename() string {
	return "schema-" + slugify(string(r.Category)) + "-" + slugify(string(r.PageType)) + ".jsonld"
}

// MarkupService runs the full generation pipeline.
type MarkupService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}
