package goquery_test

import (
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/mohyeeCT/schema-generator-llm/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Detector implements schemagen.PageTypeDetector at compile time.
var _ schemagen.PageTypeDetector = (*goquery.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("URL patterns take priority over content", func(t *testing.T) {
		t.Parallel()

		// Body screams recipe, URL says contact: URL wins.
		html := `<!DOCTYPE html>
<html><body>
<p>Ingredients for this recipe: flour, water. Instructions: mix.</p>
</body></html>`

		d := goquery.NewDetector()
		pt := d.Detect(html, "https://example.com/contact")

		assert.Equal(t, schemagen.PageTypeContact, pt)
	})

	t.Run("classifies by URL substring", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			url  string
			want schemagen.PageType
		}{
			{"https://example.com/about", schemagen.PageTypeAbout},
			{"https://example.com/who-we-are", schemagen.PageTypeAbout},
			{"https://example.com/product/widget-9", schemagen.PageTypeProduct},
			{"https://example.com/products/", schemagen.PageTypeCategory},
			{"https://example.com/services/plumbing", schemagen.PageTypeService},
			{"https://example.com/blog/first-post", schemagen.PageTypeBlog},
			{"https://example.com/news/launch", schemagen.PageTypeNews},
			{"https://example.com/faq", schemagen.PageTypeFAQ},
			{"https://example.com/recipes/soup", schemagen.PageTypeRecipe},
			{"https://example.com/events/expo", schemagen.PageTypeEvent},
			{"https://example.com/store/berlin", schemagen.PageTypeLocation},
			{"https://example.com/index", schemagen.PageTypeHomepage},
		}

		d := goquery.NewDetector()
		for _, tt := range tests {
			assert.Equal(t, tt.want, d.Detect("<html></html>", tt.url), tt.url)
		}
	})

	t.Run("detects recipe page from content keywords", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Grandma's Soup</h1>
<p>Ingredients: carrots, onions.</p>
<p>Instructions: chop and simmer.</p>
</body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, schemagen.PageTypeRecipe, d.Detect(html, "https://example.com/soup"))
	})

	t.Run("detects event page from content keywords", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Event date: June 5. Venue: Town Hall. Buy tickets now.</p>
</body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, schemagen.PageTypeEvent, d.Detect(html, "https://example.com/x"))
	})

	t.Run("detects FAQ page from content keywords", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Frequently asked questions</h1>
</body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, schemagen.PageTypeFAQ, d.Detect(html, "https://example.com/x"))
	})

	t.Run("detects blog post from article element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><h1>Thoughts on things</h1><p>Some words.</p></article>
</body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, schemagen.PageTypeBlog, d.Detect(html, "https://example.com/x"))
	})

	t.Run("detects contact page from content keywords", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Get in touch with our team.</p>
</body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, schemagen.PageTypeContact, d.Detect(html, "https://example.com/x"))
	})

	t.Run("falls back to Homepage", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDetector()
		assert.Equal(t, schemagen.PageTypeHomepage, d.Detect("<html><body><p>hello</p></body></html>", "https://example.com/"))
	})
}
