package schemagen

import "strings"

// MarkupAnalysis summarizes the quality of a generated markup for display:
// presence checks, structural counts, and an aggregate score. Pure display
// logic; nothing downstream depends on it.
type MarkupAnalysis struct {
	CoreChecks    map[string]bool `json:"coreChecks"`
	ContactChecks map[string]bool `json:"contactChecks"`
	EntityChecks  map[string]bool `json:"entityChecks"`

	TotalProperties int `json:"totalProperties"`
	NestedObjects   int `json:"nestedObjects"`
	ArrayProperties int `json:"arrayProperties"`

	QualityScore int    `json:"qualityScore"`
	Grade        string `json:"grade"`
	Complexity   string `json:"complexity"`
}

// AnalyzeMarkup computes the quality scorecard for a markup object.
func AnalyzeMarkup(m Markup) MarkupAnalysis {
	a := MarkupAnalysis{
		CoreChecks: map[string]bool{
			"Has @context":    has(m, "@context"),
			"Has @type":       has(m, "@type"),
			"Has name":        has(m, "name"),
			"Has URL":         has(m, "url"),
			"Has description": has(m, "description"),
		},
		ContactChecks: map[string]bool{
			"Multi-department contacts": listLen(m["contactPoint"]) > 1,
			"Structured address":        isObject(m["address"]),
			"Location with map":         has(m, "location"),
			"Social media links":        listLen(m["sameAs"]) > 0,
		},
		EntityChecks: map[string]bool{
			"Knowledge areas":   has(m, "knowsAbout"),
			"Subject expertise": has(m, "subjectOf"),
			"Industry keywords": listLen(m["keywords"]) > 5,
			"Wikipedia links":   hasWikipediaLink(m["subjectOf"]),
		},
	}

	for k, v := range m {
		if k == "@context" || k == "@type" {
			continue
		}
		a.TotalProperties++
		switch t := v.(type) {
		case map[string]any:
			if has(Markup(t), "@type") {
				a.NestedObjects++
			}
		case []any:
			a.ArrayProperties++
			for _, item := range t {
				if obj, ok := item.(map[string]any); ok && has(Markup(obj), "@type") {
					a.NestedObjects++
				}
			}
		}
	}

	a.QualityScore = qualityScore(m)
	switch {
	case a.QualityScore >= 80:
		a.Grade = "Excellent"
	case a.QualityScore >= 60:
		a.Grade = "Good"
	case a.QualityScore >= 40:
		a.Grade = "Fair"
	default:
		a.Grade = "Needs Improvement"
	}
	switch {
	case a.NestedObjects > 3:
		a.Complexity = "Advanced"
	case a.NestedObjects > 1:
		a.Complexity = "Intermediate"
	default:
		a.Complexity = "Basic"
	}

	return a
}

// qualityScore mirrors the original scoring: core properties up to 30,
// enhanced features up to 40, content richness up to 30.
func qualityScore(m Markup) int {
	score := 0

	core := 0
	for _, prop := range []string{"@context", "@type", "name"} {
		if has(m, prop) {
			core += 20
		}
	}
	for _, prop := range []string{"url", "description"} {
		if has(m, prop) {
			core += 5
		}
	}
	score += min(core, 30)

	if listLen(m["contactPoint"]) > 1 {
		score += 15
	}
	if listLen(m["sameAs"]) > 0 {
		score += 10
	}
	if has(m, "subjectOf") {
		score += 10
	}
	if isObject(m["address"]) {
		score += 5
	}

	if listLen(m["keywords"]) > 5 {
		score += 10
	}
	if has(m, "knowsAbout") {
		score += 10
	}
	if len(m) > 10 {
		score += 10
	}

	return score
}

func has(m Markup, key string) bool {
	_, ok := m[key]
	return ok
}

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func listLen(v any) int {
	switch t := v.(type) {
	case []any:
		return len(t)
	case []string:
		return len(t)
	}
	return 0
}

func hasWikipediaLink(v any) bool {
	list, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if url, _ := obj["url"].(string); strings.Contains(strings.ToLower(url), "wikipedia.org") {
			return true
		}
	}
	return false
}
