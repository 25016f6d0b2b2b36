package schemagen

// Extractor runs the extraction passes over a fetched document and returns
// the aggregated record. Passes are independent and order-insensitive; a
// pass that finds nothing contributes empty values rather than an error, so
// Extract only fails when the input cannot be parsed at all.
type Extractor interface {
	Extract(html string, url string) (*ExtractionRecord, error)
}

// ContentResult holds the main content extracted from an HTML page.
type ContentResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor extracts main content from HTML pages, removing
// boilerplate. Used to build the bounded content digest included in the
// model prompt.
type ContentExtractor interface {
	Extract(html string) (*ContentResult, error)
}
