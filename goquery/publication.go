package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

var authorSelectors = []string{
	`[rel="author"]`,
	".author",
	".byline",
	`[itemprop="author"]`,
	`meta[name="author"]`,
}

// extractAuthors collects author names from common byline markers.
// Duplicates are removed, first-seen order preserved.
func extractAuthors(doc *goquery.Document) []string {
	var authors []string
	seen := map[string]bool{}

	for _, selector := range authorSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			var text string
			if goquery.NodeName(s) == "meta" {
				text, _ = s.Attr("content")
			} else {
				text = s.Text()
			}
			text = strings.TrimSpace(text)
			if text == "" || len(text) >= 100 || seen[text] {
				return
			}
			seen[text] = true
			authors = append(authors, text)
		})
	}

	return authors
}

// extractPublication collects publication timestamps from time elements,
// microdata, and article meta properties. Values pass through verbatim.
func extractPublication(doc *goquery.Document) schemagen.Publication {
	p := schemagen.Publication{}

	published := []string{
		`meta[property="article:published_time"]`,
		`[itemprop="datePublished"]`,
	}
	modified := []string{
		`meta[property="article:modified_time"]`,
		`[itemprop="dateModified"]`,
	}

	for _, selector := range published {
		if v := dateValue(doc, selector); v != "" {
			p.PublishedDate = v
			break
		}
	}
	for _, selector := range modified {
		if v := dateValue(doc, selector); v != "" {
			p.ModifiedDate = v
			break
		}
	}

	if p.PublishedDate == "" {
		if v, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
			p.PublishedDate = strings.TrimSpace(v)
		}
	}

	return p
}

func dateValue(doc *goquery.Document, selector string) string {
	s := doc.Find(selector).First()
	if s.Length() == 0 {
		return ""
	}
	if goquery.NodeName(s) == "meta" {
		content, _ := s.Attr("content")
		return strings.TrimSpace(content)
	}
	if dt, ok := s.Attr("datetime"); ok {
		return strings.TrimSpace(dt)
	}
	return strings.TrimSpace(s.Text())
}
