package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// socialDomains are the known platform hosts. Anchors pointing at any of
// them are collected in first-seen order, without duplicates.
var socialDomains = []string{
	"facebook.com", "twitter.com", "instagram.com", "linkedin.com",
	"youtube.com", "pinterest.com", "tiktok.com", "snapchat.com",
}

// extractSocialLinks collects outbound links to known social platforms.
func extractSocialLinks(doc *goquery.Document) []string {
	var links []string
	seen := map[string]bool{}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" || seen[href] {
			return
		}
		for _, domain := range socialDomains {
			if strings.Contains(href, domain) {
				seen[href] = true
				links = append(links, href)
				return
			}
		}
	})

	return links
}
