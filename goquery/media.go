package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// minImageDimension filters out icons and spacer images when width/height
// attributes are present.
const minImageDimension = 50

// logoSelectors in priority order.
var logoSelectors = []string{
	".logo img",
	`[class*="logo"] img`,
	"#logo img",
	`img[alt*="logo"]`,
	`img[class*="logo"]`,
	"header img",
	`[class*="brand"] img`,
}

// extractMedia collects qualifying images and designates a featured image
// and logo. Tracking-pixel URLs are excluded everywhere.
func extractMedia(doc *goquery.Document, baseURL string) schemagen.Media {
	m := schemagen.Media{}
	base, baseErr := url.Parse(baseURL)

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			return
		}
		if baseErr == nil {
			src = resolveRef(base, src)
		}
		if tooSmall(s) || schemagen.IsTrackingURL(src) {
			return
		}
		alt, _ := s.Attr("alt")
		m.Images = append(m.Images, schemagen.Image{Src: src, Alt: alt})
	})

	if ogImage := metaContent(doc, `meta[property="og:image"]`); ogImage != "" && !schemagen.IsTrackingURL(ogImage) {
		m.FeaturedImage = ogImage
	} else if len(m.Images) > 0 {
		m.FeaturedImage = m.Images[0].Src
	}

	for _, selector := range logoSelectors {
		src, ok := doc.Find(selector).First().Attr("src")
		if !ok || src == "" {
			continue
		}
		if baseErr == nil {
			src = resolveRef(base, src)
		}
		if schemagen.IsTrackingURL(src) {
			continue
		}
		m.Logo = src
		break
	}

	return m
}

// tooSmall reports whether the image declares dimensions below the
// threshold. Images without size attributes are kept.
func tooSmall(s *goquery.Selection) bool {
	w, wok := dimension(s, "width")
	h, hok := dimension(s, "height")
	if !wok || !hok {
		return false
	}
	return w < minImageDimension || h < minImageDimension
}

func dimension(s *goquery.Selection, attr string) (int, bool) {
	raw, ok := s.Attr(attr)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// resolveRef resolves a possibly-relative image reference against the
// page URL.
func resolveRef(base *url.URL, ref string) string {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}
