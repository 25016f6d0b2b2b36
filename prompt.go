package schemagen

import (
	"fmt"
	"strings"
)

// Truncation limits keep the prompt bounded regardless of page content
// volume.
const (
	promptMaxEmails    = 3
	promptMaxPhones    = 3
	promptMaxSocial    = 5
	promptMaxFocus     = 3
	promptMaxKeywords  = 10
	promptMaxRecs      = 5
	promptContextChars = 1500
)

// BuildPrompt renders the instruction string sent to the model. It embeds
// the URL, the resolved page type and category, and a bounded digest of the
// extraction record. The model is instructed to return only a JSON object
// and to keep tracking-pixel URLs out of it.
func BuildPrompt(rec *ExtractionRecord, url string, category Category, pageType PageType) string {
	var sb strings.Builder

	sb.WriteString("You are an expert Schema.org consultant specializing in comprehensive, entity-focused markup. Create production-ready JSON-LD for the page described below.\n\n")

	fmt.Fprintf(&sb, "**URL:** %s\n", url)
	fmt.Fprintf(&sb, "**Page Type:** %s\n", pageType)
	fmt.Fprintf(&sb, "**Schema Type:** %s\n\n", category)

	sb.WriteString("**Basic Information:**\n")
	fmt.Fprintf(&sb, "- Title: %s\n", rec.Metadata.Title)
	fmt.Fprintf(&sb, "- Description: %s\n", rec.Metadata.Description)
	fmt.Fprintf(&sb, "- Language: %s\n\n", rec.Metadata.Language)

	sb.WriteString("**Existing Schema Analysis:**\n")
	fmt.Fprintf(&sb, "- Has existing schema: %t\n", rec.ExistingSchema.Analysis.HasSchema)
	fmt.Fprintf(&sb, "- Schema types found: %s\n", strings.Join(rec.ExistingSchema.Analysis.SchemaTypes, ", "))
	fmt.Fprintf(&sb, "- Completeness score: %.2f\n", rec.ExistingSchema.Analysis.CompletenessScore)
	fmt.Fprintf(&sb, "- Missing elements: %s\n\n", strings.Join(capStrings(rec.ExistingSchema.Analysis.Recommendations, promptMaxRecs), "; "))

	sb.WriteString("**Contact Information:**\n")
	fmt.Fprintf(&sb, "- Emails: %s\n", strings.Join(capStrings(rec.Contact.Emails, promptMaxEmails), ", "))
	fmt.Fprintf(&sb, "- Phones: %s\n", strings.Join(capStrings(rec.Contact.Phones, promptMaxPhones), ", "))
	fmt.Fprintf(&sb, "- Contact points with departments: %d\n\n", len(rec.Contact.ContactPoints))

	sb.WriteString("**Business Information:**\n")
	fmt.Fprintf(&sb, "- Name: %s\n", rec.Business.Name)
	fmt.Fprintf(&sb, "- Address: %s\n\n", addressDigest(rec.Business.Address))

	sb.WriteString("**Social Media:**\n")
	fmt.Fprintf(&sb, "- Social links found: %d\n", len(rec.SocialLinks))
	fmt.Fprintf(&sb, "- Platforms: %s\n\n", strings.Join(capStrings(rec.SocialLinks, promptMaxSocial), "; "))

	sb.WriteString("**Media Content:**\n")
	fmt.Fprintf(&sb, "- Logo: %s\n", rec.Media.Logo)
	fmt.Fprintf(&sb, "- Featured image: %s\n", rec.Media.FeaturedImage)
	fmt.Fprintf(&sb, "- Total images: %d\n\n", len(rec.Media.Images))

	sb.WriteString("**Entity Data:**\n")
	fmt.Fprintf(&sb, "- Business focus areas: %s\n", strings.Join(capStrings(rec.Entity.BusinessFocus, promptMaxFocus), ", "))
	fmt.Fprintf(&sb, "- Expertise areas: %s\n", strings.Join(rec.Entity.ExpertiseAreas, ", "))
	fmt.Fprintf(&sb, "- Industry keywords: %s\n", strings.Join(capStrings(rec.Entity.IndustryKeywords, promptMaxKeywords), ", "))
	fmt.Fprintf(&sb, "- Reference topics: %s\n\n", strings.Join(rec.Entity.WikiTopics, ", "))

	if rec.Content.MainText != "" {
		sb.WriteString("**Page Content Digest:**\n")
		fmt.Fprintf(&sb, "%s\n\n", truncateText(rec.Content.MainText, promptContextChars))
	}

	writeCategoryInstructions(&sb, category, pageType)

	sb.WriteString("**CRITICAL REQUIREMENTS:**\n")
	sb.WriteString("1. Create detailed contactPoint arrays with contactType values (sales, customer service, technical support) where contact data exists\n")
	sb.WriteString("2. Use PostalAddress with all available components\n")
	sb.WriteString("3. Include subjectOf CreativeWork objects linking to Wikipedia where expertise areas exist\n")
	sb.WriteString("4. Include knowsAbout with expertise areas and a comprehensive keywords array\n")
	sb.WriteString("5. Complete sameAs array with all found social profiles\n")
	sb.WriteString("6. Use proper logo and image URLs\n\n")

	sb.WriteString("**AVOID:**\n")
	sb.WriteString("- Tracking pixel URLs (webtraxs, analytics, tracking, pixel)\n")
	sb.WriteString("- Empty or null properties\n")
	sb.WriteString("- Properties with no real value from the page\n\n")

	sb.WriteString("**OUTPUT FORMAT:**\n")
	fmt.Fprintf(&sb, "Provide ONLY a valid JSON-LD object with \"@context\": \"%s\" and \"@type\": \"%s\". No explanations, no markdown formatting, just the JSON.\n", SchemaContext, category)

	return sb.String()
}

func writeCategoryInstructions(sb *strings.Builder, category Category, pageType PageType) {
	switch {
	case category == CategoryOrganization || pageType == PageTypeHomepage || pageType == PageTypeAbout:
		sb.WriteString("**ORGANIZATION SCHEMA REQUIREMENTS:**\n")
		sb.WriteString("1. Multiple contactPoint objects for different departments\n")
		sb.WriteString("2. Complete PostalAddress with all components\n")
		sb.WriteString("3. Location object with Place type and hasMap property\n")
		sb.WriteString("4. subjectOf array with CreativeWork objects linking to Wikipedia pages\n")
		sb.WriteString("5. knowsAbout array with expertise topics\n")
		sb.WriteString("6. Complete sameAs array with social media profiles\n\n")
	case category == CategoryEntitySchema:
		sb.WriteString("**ENTITY SCHEMA REQUIREMENTS:**\n")
		sb.WriteString("1. WebPage as main type with Organization as mainEntity\n")
		sb.WriteString("2. Include about, mentions, and relatedLink properties\n")
		sb.WriteString("3. Extensive knowsAbout and subjectOf arrays\n")
		sb.WriteString("4. Link to relevant Wikipedia pages in subjectOf\n\n")
	}
}

func addressDigest(a Address) string {
	if a.Full != "" {
		return a.Full
	}
	parts := []string{a.Street, a.City, a.State, a.PostalCode, a.Country}
	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, ", ")
}

func capStrings(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
