package schemagen

// Category is the Schema.org type discriminator selecting which skeleton
// and prompt instructions to use.
type Category string

// Supported markup categories. CategoryAuto is the form sentinel meaning
// "suggest from the page type".
const (
	CategoryAuto             Category = "Auto-detect"
	CategoryArticle          Category = "Article"
	CategoryScholarlyArticle Category = "ScholarlyArticle"
	CategoryOrganization     Category = "Organization"
	CategoryLocalBusiness    Category = "LocalBusiness"
	CategoryRestaurant       Category = "Restaurant"
	CategoryProduct          Category = "Product"
	CategoryRecipe           Category = "Recipe"
	CategoryEvent            Category = "Event"
	CategoryVideoObject      Category = "VideoObject"
	CategoryReview           Category = "Review"
	CategoryFAQPage          Category = "FAQPage"
	CategoryHowTo            Category = "HowTo"
	CategoryPerson           Category = "Person"
	CategoryWebPage          Category = "WebPage"
	CategoryNewsArticle      Category = "NewsArticle"
	CategoryService          Category = "Service"
	CategoryEntitySchema     Category = "EntitySchema"
)

// suggestions maps each page type to its suggested category.
var suggestions = map[PageType]Category{
	PageTypeHomepage: CategoryOrganization,
	PageTypeAbout:    CategoryOrganization,
	PageTypeContact:  CategoryOrganization,
	PageTypeProduct:  CategoryProduct,
	PageTypeCategory: CategoryWebPage,
	PageTypeService:  CategoryService,
	PageTypeBlog:     CategoryArticle,
	PageTypeNews:     CategoryNewsArticle,
	PageTypeFAQ:      CategoryFAQPage,
	PageTypeRecipe:   CategoryRecipe,
	PageTypeEvent:    CategoryEvent,
	PageTypeReview:   CategoryReview,
	PageTypeVideo:    CategoryVideoObject,
	PageTypeLocation: CategoryLocalBusiness,
	PageTypeTeam:     CategoryPerson,
}

// SuggestCategory maps a page type to a suggested markup category.
// Total and deterministic: unknown page types suggest CategoryWebPage.
func SuggestCategory(pt PageType) Category {
	if c, ok := suggestions[pt]; ok {
		return c
	}
	return CategoryWebPage
}
