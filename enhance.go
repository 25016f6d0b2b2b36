package schemagen

import "strings"

// Caps applied when populating markup from an extraction record.
const (
	maxContactPoints = 3
	maxSameAs        = 6
	maxKeywords      = 15
	maxSubjectOf     = 4
	minKeywords      = 5
)

// TrackingMarkers are substrings identifying tracking-pixel and analytics
// URLs. Such URLs must never appear as a logo or featured-image value.
var TrackingMarkers = []string{"webtraxs", "analytics", "tracking", "pixel"}

// IsTrackingURL reports whether the URL contains a tracking marker.
func IsTrackingURL(url string) bool {
	lower := strings.ToLower(url)
	for _, marker := range TrackingMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// WikipediaURL builds the reference link for a topic string.
func WikipediaURL(topic string) string {
	return "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(topic, " ", "_")
}

// PopulateTemplate fills a skeleton directly from the extraction record,
// with no model involvement. This is the deterministic fallback path:
// identical record and skeleton always produce identical output.
func PopulateTemplate(skeleton Markup, rec *ExtractionRecord, url string) Markup {
	m := deepCopyMarkup(skeleton)

	m["url"] = url
	if name := firstNonEmpty(rec.Business.Name, rec.Metadata.Title); name != "" {
		m["name"] = name
	}
	if rec.Metadata.Description != "" {
		m["description"] = rec.Metadata.Description
	}
	if rec.Media.Logo != "" {
		m["logo"] = rec.Media.Logo
	}
	if rec.Media.FeaturedImage != "" {
		m["image"] = rec.Media.FeaturedImage
	}

	if m.Type() == "Organization" {
		if cps := buildContactPoints(rec.Contact); len(cps) > 0 {
			m["contactPoint"] = cps
		}
		if addr := buildAddress(rec.Business.Address); addr != nil {
			m["address"] = addr
		}
		if len(rec.Entity.ExpertiseAreas) > 0 {
			m["knowsAbout"] = toAnySlice(rec.Entity.ExpertiseAreas)
		}
		if subjects := buildSubjectOf(rec.Entity.WikiTopics); len(subjects) > 0 {
			m["subjectOf"] = subjects
		}
	}

	if len(rec.SocialLinks) > 0 {
		m["sameAs"] = toAnySlice(capList(rec.SocialLinks, maxSameAs))
	}

	if keywords := unionKeywords(rec.Metadata.Keywords, rec.Entity.IndustryKeywords, maxKeywords); len(keywords) > 0 {
		m["keywords"] = toAnySlice(keywords)
	}

	return Clean(m)
}

// Enhance post-processes a parsed-or-fallback markup against the extraction
// record. The model's URL echo is never trusted; tracking-pixel image
// values are replaced with vetted extraction values; sparse keyword and
// subject properties are topped up from the record. The result is cleaned
// of empty values.
func Enhance(m Markup, rec *ExtractionRecord, url string) Markup {
	out := deepCopyMarkup(m)

	out["url"] = url

	if logo, ok := out["logo"].(string); ok && IsTrackingURL(logo) {
		out["logo"] = rec.Media.Logo
	}
	if img, ok := out["image"].(string); ok && IsTrackingURL(img) {
		out["image"] = rec.Media.FeaturedImage
	}

	if keywordCount(out["keywords"]) < minKeywords {
		existing := stringValues(out["keywords"])
		if keywords := unionKeywords(existing, append(append([]string{}, rec.Metadata.Keywords...), rec.Entity.IndustryKeywords...), maxKeywords); len(keywords) > 0 {
			out["keywords"] = toAnySlice(keywords)
		}
	}

	if out.Type() == "Organization" || (out.Type() == "WebPage" && hasEntityShape(out)) {
		if _, ok := out["subjectOf"]; !ok {
			if subjects := buildSubjectOf(rec.Entity.WikiTopics); len(subjects) > 0 {
				out["subjectOf"] = subjects
			}
		}
	}

	return Clean(out)
}

// hasEntityShape reports whether a WebPage markup carries an entity-style
// mainEntity, which makes it eligible for subjectOf synthesis.
func hasEntityShape(m Markup) bool {
	me, ok := m["mainEntity"].(map[string]any)
	if !ok {
		return false
	}
	t, _ := me["@type"].(string)
	return t == "Organization"
}

// buildContactPoints converts extracted emails and phones into ContactPoint
// objects. Emails seed the points with a contact type inferred from the
// address; phones attach to existing points first, then form their own.
func buildContactPoints(c Contact) []any {
	var points []map[string]any

	for _, email := range capList(c.Emails, maxContactPoints) {
		contactType := "customer service"
		lower := strings.ToLower(email)
		if strings.Contains(lower, "sales") {
			contactType = "sales"
		} else if strings.Contains(lower, "support") {
			contactType = "technical support"
		}
		points = append(points, map[string]any{
			"@type":             "ContactPoint",
			"contactType":       contactType,
			"email":             email,
			"areaServed":        "US",
			"availableLanguage": "English",
		})
	}

	for i, phone := range capList(c.Phones, maxContactPoints) {
		if i < len(points) {
			points[i]["telephone"] = phone
			continue
		}
		points = append(points, map[string]any{
			"@type":             "ContactPoint",
			"contactType":       "customer service",
			"telephone":         phone,
			"areaServed":        "US",
			"availableLanguage": "English",
		})
	}

	out := make([]any, 0, len(points))
	for _, p := range points {
		out = append(out, p)
	}
	return out
}

// buildAddress converts extracted address components into a PostalAddress
// object, or nil when nothing was extracted.
func buildAddress(a Address) map[string]any {
	if a.Empty() {
		return nil
	}
	addr := map[string]any{"@type": "PostalAddress"}
	if a.Street != "" {
		addr["streetAddress"] = a.Street
	}
	if a.City != "" {
		addr["addressLocality"] = a.City
	}
	if a.State != "" {
		addr["addressRegion"] = a.State
	}
	if a.PostalCode != "" {
		addr["postalCode"] = a.PostalCode
	}
	if a.Country != "" {
		addr["addressCountry"] = a.Country
	}
	if len(addr) == 1 && a.Full != "" {
		addr["streetAddress"] = a.Full
	}
	if len(addr) == 1 {
		return nil
	}
	return addr
}

// buildSubjectOf synthesizes CreativeWork reference links from wiki topics.
func buildSubjectOf(topics []string) []any {
	out := make([]any, 0, maxSubjectOf)
	for _, topic := range capList(topics, maxSubjectOf) {
		out = append(out, map[string]any{
			"@type":       "CreativeWork",
			"url":         WikipediaURL(topic),
			"description": topic + " represents a key area of expertise and knowledge.",
		})
	}
	return out
}

// unionKeywords merges keyword lists preserving first-seen order, dedupes
// case-insensitively, and caps the result.
func unionKeywords(primary, secondary []string, cap int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, kw := range append(append([]string{}, primary...), secondary...) {
		kw = strings.TrimSpace(kw)
		if kw == "" || seen[strings.ToLower(kw)] {
			continue
		}
		seen[strings.ToLower(kw)] = true
		out = append(out, kw)
		if len(out) == cap {
			break
		}
	}
	return out
}

func keywordCount(v any) int {
	return len(stringValues(v))
}

func stringValues(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func capList(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

func toAnySlice(list []string) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
