package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Phone patterns tolerate optional country code, parentheses, and
	// dot/dash/space separators.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	nonDigitRe = regexp.MustCompile(`\D`)
)

// minPhoneDigits is the acceptance boundary: candidates with fewer digits
// after stripping non-digit characters are rejected.
const minPhoneDigits = 10

// extractContact collects emails and phones from explicit mailto:/tel:
// links and from regex matches over the page text. Lists are deduplicated
// in first-seen order.
func extractContact(doc *goquery.Document) schemagen.Contact {
	c := schemagen.Contact{}
	seenEmails := map[string]bool{}
	seenPhones := map[string]bool{}

	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		email := strings.TrimPrefix(href, "mailto:")
		// Drop ?subject=... style suffixes.
		if i := strings.IndexByte(email, '?'); i >= 0 {
			email = email[:i]
		}
		if email != "" && !seenEmails[email] {
			seenEmails[email] = true
			c.Emails = append(c.Emails, email)
		}
	})

	pageText := doc.Text()
	for _, email := range emailRe.FindAllString(pageText, -1) {
		if !seenEmails[email] {
			seenEmails[email] = true
			c.Emails = append(c.Emails, email)
		}
	}

	doc.Find(`a[href^="tel:"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		phone := strings.TrimPrefix(href, "tel:")
		if phone == "" || digitCount(phone) < minPhoneDigits || seenPhones[phone] {
			return
		}
		seenPhones[phone] = true
		c.Phones = append(c.Phones, phone)
		c.ContactPoints = append(c.ContactPoints, schemagen.ContactPoint{
			Phone:      phone,
			Department: sniffDepartment(s),
			Context:    truncate(strings.TrimSpace(s.Parent().Text()), 100),
		})
	})

	for _, re := range phoneRes {
		for _, phone := range re.FindAllString(pageText, -1) {
			if digitCount(phone) < minPhoneDigits || seenPhones[phone] {
				continue
			}
			seenPhones[phone] = true
			c.Phones = append(c.Phones, phone)
		}
	}

	return c
}

// sniffDepartment infers a department label from the text surrounding a
// tel: link.
func sniffDepartment(s *goquery.Selection) string {
	parentText := strings.ToLower(s.Parent().Text())
	switch {
	case strings.Contains(parentText, "sales"):
		return "sales"
	case strings.Contains(parentText, "support"):
		return "technical support"
	case strings.Contains(parentText, "industrial"):
		return "industrial"
	}
	return "customer service"
}

func digitCount(s string) int {
	return len(nonDigitRe.ReplaceAllString(s, ""))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
