// Package goquery provides CSS-selector based implementations of the
// extraction passes and the page-type detector.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Ensure Detector implements schemagen.PageTypeDetector at compile time.
var _ schemagen.PageTypeDetector = (*Detector)(nil)

// Detector classifies pages by URL substrings first, then content
// keywords. Detection is total: unrecognizable pages are Homepage.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// urlPattern pairs a page type with its URL substrings. Order matters:
// the first matching entry wins.
type urlPattern struct {
	pageType schemagen.PageType
	patterns []string
}

var urlPatterns = []urlPattern{
	{schemagen.PageTypeHomepage, []string{"/home", "/index"}},
	{schemagen.PageTypeAbout, []string{"/about", "/company", "/who-we-are"}},
	{schemagen.PageTypeContact, []string{"/contact", "/get-in-touch", "/reach-us"}},
	{schemagen.PageTypeProduct, []string{"/product/", "/item/", "/p/"}},
	{schemagen.PageTypeCategory, []string{"/category/", "/products/", "/shop/"}},
	{schemagen.PageTypeService, []string{"/service/", "/services/"}},
	{schemagen.PageTypeBlog, []string{"/blog/", "/post/", "/article/"}},
	{schemagen.PageTypeNews, []string{"/news/", "/press/", "/media/"}},
	{schemagen.PageTypeFAQ, []string{"/faq", "/help", "/support"}},
	{schemagen.PageTypeRecipe, []string{"/recipe/", "/recipes/"}},
	{schemagen.PageTypeEvent, []string{"/event/", "/events/"}},
	{schemagen.PageTypeLocation, []string{"/location/", "/store/", "/branch/"}},
}

// Detect analyzes the URL and document content and returns the page type.
func (d *Detector) Detect(html string, url string) schemagen.PageType {
	urlLower := strings.ToLower(url)
	for _, entry := range urlPatterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(urlLower, pattern) {
				return entry.pageType
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return schemagen.PageTypeHomepage
	}

	return detectFromContent(doc)
}

// detectFromContent checks page text for content indicators, in fixed
// priority order.
func detectFromContent(doc *goquery.Document) schemagen.PageType {
	pageText := strings.ToLower(doc.Text())
	title := strings.ToLower(doc.Find("title").First().Text())

	switch {
	case containsAny(pageText, "recipe", "ingredients", "cooking time"):
		return schemagen.PageTypeRecipe
	case containsAny(pageText, "event", "date:", "location:", "tickets"):
		return schemagen.PageTypeEvent
	case containsAny(pageText, "faq", "frequently asked", "questions"):
		return schemagen.PageTypeFAQ
	case doc.Find("article").Length() > 0 || strings.Contains(title, "blog"):
		return schemagen.PageTypeBlog
	case containsAny(pageText, "contact us", "get in touch", "phone:", "email:"):
		return schemagen.PageTypeContact
	case containsAny(pageText, "about us", "our company", "our story"):
		return schemagen.PageTypeAbout
	case containsAny(pageText, "price", "buy now", "add to cart"):
		return schemagen.PageTypeProduct
	}

	return schemagen.PageTypeHomepage
}

func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
