package schemagen

import "strings"

// HasHTTPScheme reports whether the URL begins with an http or https
// scheme. Callers validate this before handing a URL to a Fetcher.
func HasHTTPScheme(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// slugify lowercases a label and collapses non-alphanumeric runs into
// single hyphens, for use in filenames.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
