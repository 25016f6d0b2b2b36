package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// industryVocabulary maps an industry label to the terms that signal it.
// Any term match adds the industry to the expertise areas.
type industryEntry struct {
	industry string
	terms    []string
	topics   []string
}

var industryVocabulary = []industryEntry{
	{"Technology", []string{"software", "digital", "tech", "innovation", "development"},
		[]string{"Technology", "Software", "Innovation"}},
	{"Manufacturing", []string{"precision", "engineering", "quality", "production", "manufacturing"},
		[]string{"Manufacturing", "Engineering", "Quality control"}},
	{"Healthcare", []string{"medical", "health", "clinical", "patient", "treatment"}, nil},
	{"Finance", []string{"financial", "investment", "banking", "insurance", "wealth"}, nil},
	{"Education", []string{"learning", "education", "training", "academic", "school"}, nil},
	{"Hardware", []string{"hardware", "industrial", "architectural", "mechanical", "precision"},
		[]string{"Hardware", "Industrial design", "Mechanical engineering"}},
	{"Construction", []string{"construction", "building", "architecture", "design", "materials"},
		[]string{"Construction", "Architecture", "Building materials"}},
}

// focusTerms identify headings describing what the business offers.
var focusTerms = []string{"services", "products", "solutions", "expertise"}

// extractEntity collects industry and expertise signals: business focus
// headings, meta keywords, and vocabulary matches over the page text with
// their associated reference topics.
func extractEntity(doc *goquery.Document) schemagen.Entity {
	e := schemagen.Entity{}

	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if containsAny(strings.ToLower(text), focusTerms...) {
			e.BusinessFocus = append(e.BusinessFocus, text)
		}
	})

	if keywords := metaContent(doc, `meta[name="keywords"]`); keywords != "" {
		e.IndustryKeywords = append(e.IndustryKeywords, splitKeywords(keywords)...)
	}

	contentText := strings.ToLower(doc.Text())
	for _, entry := range industryVocabulary {
		if !containsAny(contentText, entry.terms...) {
			continue
		}
		e.ExpertiseAreas = append(e.ExpertiseAreas, entry.industry)
		e.WikiTopics = append(e.WikiTopics, entry.topics...)
	}

	return e
}
