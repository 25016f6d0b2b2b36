package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

const maxMainTextLen = 3000

var contentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	".content",
	"#content",
	".post-content",
	".entry-content",
	".article-content",
}

// analyzeContent extracts the main text of the page and a few structural
// signals. Chrome elements (nav, header, footer, aside) and scripts are
// removed before text extraction so boilerplate does not pollute the result.
func analyzeContent(doc *goquery.Document) schemagen.ContentAnalysis {
	clone := goquery.CloneDocument(doc)
	clone.Find("script, style, nav, header, footer, aside").Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if s := clone.Find(selector).First(); s.Length() > 0 {
			main = s
			break
		}
	}
	if main == nil {
		main = clone.Find("body").First()
	}

	text := normalizeSpace(main.Text())
	wordCount := 0
	if text != "" {
		wordCount = len(strings.Fields(text))
	}
	if len(text) > maxMainTextLen {
		text = text[:maxMainTextLen]
	}

	return schemagen.ContentAnalysis{
		MainText:  text,
		WordCount: wordCount,
		HasForms:  doc.Find("form").Length() > 0,
		HasTables: doc.Find("table").Length() > 0,
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
