package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// extractExistingSchema collects structured data already present on the page:
// JSON-LD script blocks and microdata items. A malformed JSON-LD block is
// skipped, never an error. The analysis scores the first JSON-LD block
// against a minimal property set and, for Organization markup, lists the
// enrichment properties it is missing.
func extractExistingSchema(doc *goquery.Document) schemagen.ExistingSchema {
	es := schemagen.ExistingSchema{}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return
		}
		switch v := data.(type) {
		case map[string]any:
			es.JSONLD = append(es.JSONLD, schemagen.Markup(v))
			es.Analysis.HasSchema = true
			if t := schemagen.Markup(v).Type(); t != "" {
				es.Analysis.SchemaTypes = append(es.Analysis.SchemaTypes, t)
			}
		case []any:
			for _, item := range v {
				m, ok := item.(map[string]any)
				if !ok {
					continue
				}
				es.JSONLD = append(es.JSONLD, schemagen.Markup(m))
				es.Analysis.HasSchema = true
				if t := schemagen.Markup(m).Type(); t != "" {
					es.Analysis.SchemaTypes = append(es.Analysis.SchemaTypes, t)
				}
			}
		}
	})

	doc.Find("[itemscope]").Each(func(_ int, s *goquery.Selection) {
		item := schemagen.MicrodataItem{
			Type:       s.AttrOr("itemtype", ""),
			Properties: map[string]string{},
		}
		s.Find("[itemprop]").Each(func(_ int, prop *goquery.Selection) {
			name := prop.AttrOr("itemprop", "")
			value := prop.AttrOr("content", "")
			if value == "" {
				value = strings.TrimSpace(prop.Text())
			}
			if name != "" && value != "" {
				item.Properties[name] = value
			}
		})
		if item.Type != "" || len(item.Properties) > 0 {
			es.Microdata = append(es.Microdata, item)
			es.Analysis.HasSchema = true
		}
	})

	if len(es.JSONLD) > 0 {
		es.Analysis.CompletenessScore, es.Analysis.Recommendations = analyzeSchemaBlock(es.JSONLD[0])
	}

	return es
}

// analyzeSchemaBlock scores a JSON-LD block on a minimal required property
// set and recommends the Organization enrichment properties it lacks.
func analyzeSchemaBlock(m schemagen.Markup) (float64, []string) {
	required := []string{"name", "url", "description"}
	present := 0
	for _, prop := range required {
		if _, ok := m[prop]; ok {
			present++
		}
	}
	score := float64(present) / float64(len(required))

	var recs []string
	if m.Type() == "Organization" {
		missing := []struct {
			prop string
			rec  string
		}{
			{"contactPoint", "Add multi-department contact points"},
			{"sameAs", "Add social media links"},
			{"address", "Add structured address"},
			{"subjectOf", "Add subject matter expertise"},
			{"knowsAbout", "Add knowledge areas"},
			{"location", "Add location with map link"},
		}
		for _, mr := range missing {
			if _, ok := m[mr.prop]; !ok {
				recs = append(recs, mr.rec)
			}
		}
	}

	return score, recs
}
