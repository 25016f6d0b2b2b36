package schemagen

// ExtractionRecord aggregates the output of all extraction passes for a
// single page. Every field is optional: a pass that finds nothing leaves
// its sub-record zero-valued, so downstream code must never assume any
// particular field is present.
type ExtractionRecord struct {
	URL            string          `json:"url"`
	ContentHash    string          `json:"contentHash"`
	Metadata       Metadata        `json:"metadata"`
	SocialMeta     SocialMeta      `json:"socialMeta"`
	Contact        Contact         `json:"contact"`
	Business       Business        `json:"business"`
	SocialLinks    []string        `json:"socialLinks"`
	Media          Media           `json:"media"`
	Entity         Entity          `json:"entity"`
	Authors        []string        `json:"authors"`
	Publication    Publication     `json:"publication"`
	Content        ContentAnalysis `json:"content"`
	ExistingSchema ExistingSchema  `json:"existingSchema"`
}

// Metadata holds basic page metadata from the head of the document.
type Metadata struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"`
	Language     string   `json:"language"`
	CanonicalURL string   `json:"canonicalUrl"`
}

// SocialMeta holds Open Graph and Twitter Card properties, keyed without
// their respective prefixes ("og:title" is stored under "title").
type SocialMeta struct {
	OG      map[string]string `json:"og"`
	Twitter map[string]string `json:"twitter"`
}

// ContactPoint is a phone number with a department inferred from the text
// surrounding its tel: link.
type ContactPoint struct {
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Context    string `json:"context"`
}

// Contact holds emails and phone numbers found on the page, from explicit
// mailto:/tel: links and from regex matches over visible text. Lists are
// deduplicated, first-seen order.
type Contact struct {
	Emails        []string       `json:"emails"`
	Phones        []string       `json:"phones"`
	ContactPoints []ContactPoint `json:"contactPoints"`
}

// Address holds postal address components. Full is only set when no
// individual component matched and a street-address pattern was found in
// the page text instead.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Full       string `json:"full"`
}

// Empty reports whether no address component was extracted.
func (a Address) Empty() bool {
	return a == Address{}
}

// Business holds the business name and address extracted from microdata
// attributes and class-name heuristics.
type Business struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// Image is an image source with its alt text.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Media holds qualifying page images plus the designated featured image and
// logo. Tracking pixels never appear here.
type Media struct {
	Images        []Image `json:"images"`
	FeaturedImage string  `json:"featuredImage"`
	Logo          string  `json:"logo"`
}

// Entity holds industry and expertise signals matched against a fixed
// vocabulary, used to enrich Organization-style markup.
type Entity struct {
	BusinessFocus    []string `json:"businessFocus"`
	ExpertiseAreas   []string `json:"expertiseAreas"`
	IndustryKeywords []string `json:"industryKeywords"`
	WikiTopics       []string `json:"wikiTopics"`
}

// Publication holds publication timestamps as found on the page; values are
// passed through verbatim, no date parsing is attempted.
type Publication struct {
	PublishedDate string `json:"publishedDate"`
	ModifiedDate  string `json:"modifiedDate"`
}

// ContentAnalysis holds a bounded digest of the page's main content.
type ContentAnalysis struct {
	MainText  string `json:"mainText"`
	WordCount int    `json:"wordCount"`
	HasForms  bool   `json:"hasForms"`
	HasTables bool   `json:"hasTables"`
}

// MicrodataItem is one itemscope element with its itemprop values.
type MicrodataItem struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
}

// SchemaAnalysis summarizes markup already present on the page.
type SchemaAnalysis struct {
	HasSchema         bool     `json:"hasSchema"`
	SchemaTypes       []string `json:"schemaTypes"`
	CompletenessScore float64  `json:"completenessScore"`
	Recommendations   []string `json:"recommendations"`
}

// ExistingSchema holds JSON-LD blocks and microdata items found on the
// page, along with an analysis of their completeness.
type ExistingSchema struct {
	JSONLD    []Markup        `json:"jsonLd"`
	Microdata []MicrodataItem `json:"microdata"`
	Analysis  SchemaAnalysis  `json:"analysis"`
}
