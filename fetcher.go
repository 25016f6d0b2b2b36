package schemagen

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the document
	// body. The context controls timeout and cancellation. Implementations
	// return ETIMEOUT when the request deadline is exceeded and
	// EUNAVAILABLE for other transport failures; there is no retry.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
