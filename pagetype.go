package schemagen

// PageType is a heuristic classification of a page's purpose. It is
// distinct from the markup Category, though it is used to suggest one.
type PageType string

// Supported page types. PageTypeAuto is the form sentinel meaning "let
// detection decide"; detection itself never returns it.
const (
	PageTypeAuto     PageType = "Auto-detect"
	PageTypeHomepage PageType = "Homepage"
	PageTypeAbout    PageType = "About Us"
	PageTypeContact  PageType = "Contact Us"
	PageTypeProduct  PageType = "Product Page"
	PageTypeCategory PageType = "Category Page"
	PageTypeService  PageType = "Service Page"
	PageTypeBlog     PageType = "Blog Post"
	PageTypeNews     PageType = "News Article"
	PageTypeFAQ      PageType = "FAQ Page"
	PageTypeRecipe   PageType = "Recipe Page"
	PageTypeEvent    PageType = "Event Page"
	PageTypeReview   PageType = "Review Page"
	PageTypeVideo    PageType = "Video Page"
	PageTypeLocation PageType = "Location/Store"
	PageTypeTeam     PageType = "Team/People"
)

// PageTypes lists all detectable page types in display order.
var PageTypes = []PageType{
	PageTypeHomepage,
	PageTypeAbout,
	PageTypeContact,
	PageTypeProduct,
	PageTypeCategory,
	PageTypeService,
	PageTypeBlog,
	PageTypeNews,
	PageTypeFAQ,
	PageTypeRecipe,
	PageTypeEvent,
	PageTypeReview,
	PageTypeVideo,
	PageTypeLocation,
	PageTypeTeam,
}

// PageTypeDescriptions maps each page type to its form help text.
var PageTypeDescriptions = map[PageType]string{
	PageTypeHomepage: "The main page of a website",
	PageTypeAbout:    "Company information and background",
	PageTypeContact:  "Contact information and forms",
	PageTypeProduct:  "Individual product details",
	PageTypeCategory: "Product or service category listing",
	PageTypeService:  "Specific service information",
	PageTypeBlog:     "Individual blog article",
	PageTypeNews:     "News or press release",
	PageTypeFAQ:      "Frequently asked questions",
	PageTypeRecipe:   "Recipe with ingredients and instructions",
	PageTypeEvent:    "Event details and information",
	PageTypeReview:   "Product or service reviews",
	PageTypeVideo:    "Video content page",
	PageTypeLocation: "Physical location information",
	PageTypeTeam:     "Team member or individual profiles",
}

// PageTypeDetector classifies a page from its URL and content.
type PageTypeDetector interface {
	// Detect is total and deterministic: identical input always yields the
	// same page type, and an unrecognizable page yields PageTypeHomepage.
	Detect(html string, url string) PageType
}
