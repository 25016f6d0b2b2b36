package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// maxNameLen rejects selector matches too long to be a business name.
const maxNameLen = 100

// nameSelectors in priority order: microdata first, then class-name
// heuristics. The first non-empty match wins.
var nameSelectors = []string{
	`[itemprop="name"]`,
	"h1",
	".company-name",
	".business-name",
	`[class*="name"]`,
	".logo-text",
}

// addressSelectors per component, each list in priority order.
var addressSelectors = []struct {
	assign    func(*schemagen.Address, string)
	selectors []string
}{
	{func(a *schemagen.Address, v string) { a.Street = v },
		[]string{`[itemprop="streetAddress"]`, ".street", ".address-line-1", ".street-address"}},
	{func(a *schemagen.Address, v string) { a.City = v },
		[]string{`[itemprop="addressLocality"]`, ".city", ".locality", ".address-city"}},
	{func(a *schemagen.Address, v string) { a.State = v },
		[]string{`[itemprop="addressRegion"]`, ".state", ".region", ".address-state"}},
	{func(a *schemagen.Address, v string) { a.PostalCode = v },
		[]string{`[itemprop="postalCode"]`, ".zip", ".postal-code", ".zipcode"}},
	{func(a *schemagen.Address, v string) { a.Country = v },
		[]string{`[itemprop="addressCountry"]`, ".country", ".address-country"}},
}

var streetAddressRe = regexp.MustCompile(`\d+\s+[A-Za-z\s,.]+`)

// extractBusiness collects the business name and address. Each field takes
// the first non-empty selector match; when no component matches, a
// street-address pattern over the page text fills Address.Full instead.
func extractBusiness(doc *goquery.Document) schemagen.Business {
	b := schemagen.Business{}

	for _, selector := range nameSelectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" && len(text) < maxNameLen {
			b.Name = text
			break
		}
	}

	for _, component := range addressSelectors {
		for _, selector := range component.selectors {
			text := strings.TrimSpace(doc.Find(selector).First().Text())
			if text != "" {
				component.assign(&b.Address, text)
				break
			}
		}
	}

	if b.Address.Empty() {
		if match := streetAddressRe.FindString(doc.Text()); match != "" {
			full := strings.TrimSpace(match)
			if len(full) < 200 {
				b.Address.Full = full
			}
		}
	}

	return b
}
