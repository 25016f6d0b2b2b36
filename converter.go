package schemagen

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a ContentExtractor).
	Convert(html string) (string, error)
}

// LanguageDetector identifies the language of a text sample. Used when the
// document does not declare a lang attribute.
type LanguageDetector interface {
	// Detect returns an ISO 639-1 code, or "" when the language cannot be
	// determined.
	Detect(text string) string
}
