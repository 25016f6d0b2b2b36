package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// descriptionSelectors in fixed preference order: plain meta description
// first, then the social variants.
var descriptionSelectors = []string{
	`meta[name="description"]`,
	`meta[property="og:description"]`,
	`meta[name="twitter:description"]`,
}

// extractMetadata collects the basic head metadata: title, description,
// keywords, language, and canonical URL.
func extractMetadata(doc *goquery.Document) schemagen.Metadata {
	md := schemagen.Metadata{
		Title:        strings.TrimSpace(doc.Find("title").First().Text()),
		CanonicalURL: extractCanonicalURL(doc),
	}

	for _, selector := range descriptionSelectors {
		if content := metaContent(doc, selector); content != "" {
			md.Description = content
			break
		}
	}

	if keywords := metaContent(doc, `meta[name="keywords"]`); keywords != "" {
		md.Keywords = splitKeywords(keywords)
	}

	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		md.Language = strings.TrimSpace(lang)
	}

	return md
}

// extractSocialMeta collects Open Graph and Twitter Card properties,
// stored without their prefixes.
func extractSocialMeta(doc *goquery.Document) schemagen.SocialMeta {
	sm := schemagen.SocialMeta{
		OG:      map[string]string{},
		Twitter: map[string]string{},
	}

	doc.Find(`meta[property^="og:"]`).Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		content, _ := s.Attr("content")
		key := strings.TrimPrefix(prop, "og:")
		if key != "" && content != "" {
			sm.OG[key] = content
		}
	})

	doc.Find(`meta[name^="twitter:"]`).Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")
		key := strings.TrimPrefix(name, "twitter:")
		if key != "" && content != "" {
			sm.Twitter[key] = content
		}
	})

	return sm
}

func extractCanonicalURL(doc *goquery.Document) string {
	href, _ := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	return strings.TrimSpace(href)
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func splitKeywords(raw string) []string {
	var out []string
	for _, kw := range strings.Split(raw, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
