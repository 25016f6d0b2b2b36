package schemagen

// SchemaContext is the namespace context embedded in every skeleton.
const SchemaContext = "https://schema.org"

// Template pairs a markup skeleton with its form description. Skeletons
// are seeds for the prompt and for deterministic fallback population; they
// are never validated against.
type Template struct {
	Skeleton    Markup
	Description string
}

// TemplateRegistry is the static table mapping categories to skeletons.
// Built once at startup, immutable afterwards; Get returns deep copies so
// callers can mutate freely.
type TemplateRegistry struct {
	templates map[Category]Template
	order     []Category
}

// NewTemplateRegistry creates a registry populated with every supported
// category.
func NewTemplateRegistry() *TemplateRegistry {
	r := &TemplateRegistry{templates: make(map[Category]Template)}
	for _, t := range builtinTemplates {
		r.templates[t.category] = Template{Skeleton: t.skeleton, Description: t.description}
		r.order = append(r.order, t.category)
	}
	return r
}

// Get returns a deep copy of the skeleton for the category.
// Unknown categories fall back to the Organization skeleton, so Get is
// total.
func (r *TemplateRegistry) Get(category Category) Markup {
	t, ok := r.templates[category]
	if !ok {
		t = r.templates[CategoryOrganization]
	}
	return deepCopyMarkup(t.Skeleton)
}

// Describe returns the form description for the category, or "".
func (r *TemplateRegistry) Describe(category Category) string {
	return r.templates[category].Description
}

// List returns all registered categories in definition order.
func (r *TemplateRegistry) List() []Category {
	out := make([]Category, len(r.order))
	copy(out, r.order)
	return out
}

func deepCopyMarkup(m Markup) Markup {
	out := make(Markup, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[k] = deepCopyValue(v)
		}
		return out
	case Markup:
		return map[string]any(deepCopyMarkup(t))
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = deepCopyValue(item)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}

type builtinTemplate struct {
	category    Category
	description string
	skeleton    Markup
}

var builtinTemplates = []builtinTemplate{
	{
		category:    CategoryArticle,
		description: "Comprehensive article schema for blog posts and news",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "Article",
			"headline":    "",
			"description": "",
			"image":       "",
			"author": map[string]any{
				"@type": "Person",
				"name":  "",
				"url":   "",
			},
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "",
				"logo": map[string]any{
					"@type": "ImageObject",
					"url":   "",
				},
			},
			"datePublished":  "",
			"dateModified":   "",
			"url":            "",
			"articleSection": "",
			"wordCount":      "",
			"keywords":       []any{},
			"mainEntityOfPage": map[string]any{
				"@type": "WebPage",
				"@id":   "",
			},
		},
	},
	{
		category:    CategoryScholarlyArticle,
		description: "Academic papers and scholarly articles",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "ScholarlyArticle",
			"headline":    "",
			"description": "",
			"author": []any{map[string]any{
				"@type": "Person",
				"name":  "",
				"affiliation": map[string]any{
					"@type": "Organization",
					"name":  "",
				},
			}},
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "",
			},
			"datePublished": "",
			"keywords":      []any{},
			"abstract":      "",
			"citation":      []any{},
		},
	},
	{
		category:    CategoryOrganization,
		description: "Comprehensive organization schema with enhanced properties",
		skeleton: Markup{
			"@context":     SchemaContext,
			"@type":        "Organization",
			"name":         "",
			"url":          "",
			"logo":         "",
			"description":  "",
			"image":        "",
			"contactPoint": []any{},
			"sameAs":       []any{},
			"address": map[string]any{
				"@type":           "PostalAddress",
				"streetAddress":   "",
				"addressLocality": "",
				"addressRegion":   "",
				"postalCode":      "",
				"addressCountry":  "",
			},
			"keywords":  []any{},
			"telephone": "",
			"email":     "",
			"subjectOf": []any{},
			"location": map[string]any{
				"@type":   "Place",
				"name":    "",
				"address": map[string]any{},
				"hasMap":  "",
			},
			"knowsAbout": []any{},
		},
	},
	{
		category:    CategoryLocalBusiness,
		description: "Local business with location, hours, and ratings",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "LocalBusiness",
			"name":        "",
			"url":         "",
			"image":       "",
			"description": "",
			"address": map[string]any{
				"@type":           "PostalAddress",
				"streetAddress":   "",
				"addressLocality": "",
				"addressRegion":   "",
				"postalCode":      "",
				"addressCountry":  "",
			},
			"geo": map[string]any{
				"@type":     "GeoCoordinates",
				"latitude":  "",
				"longitude": "",
			},
			"telephone":    "",
			"email":        "",
			"openingHours": []any{},
			"priceRange":   "",
			"aggregateRating": map[string]any{
				"@type":       "AggregateRating",
				"ratingValue": "",
				"reviewCount": "",
			},
			"servesCuisine":   "",
			"paymentAccepted": []any{},
		},
	},
	{
		category:    CategoryRestaurant,
		description: "Restaurant with menu, cuisine, and dining details",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "Restaurant",
			"name":        "",
			"url":         "",
			"image":       "",
			"description": "",
			"address": map[string]any{
				"@type":           "PostalAddress",
				"streetAddress":   "",
				"addressLocality": "",
				"addressRegion":   "",
				"postalCode":      "",
				"addressCountry":  "",
			},
			"telephone":           "",
			"openingHours":        []any{},
			"priceRange":          "",
			"servesCuisine":       []any{},
			"menu":                "",
			"acceptsReservations": true,
			"aggregateRating": map[string]any{
				"@type":       "AggregateRating",
				"ratingValue": "",
				"reviewCount": "",
			},
		},
	},
	{
		category:    CategoryProduct,
		description: "Product schema with pricing, ratings, and detailed specifications",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "Product",
			"name":        "",
			"description": "",
			"image":       []any{},
			"brand": map[string]any{
				"@type": "Brand",
				"name":  "",
			},
			"manufacturer": map[string]any{
				"@type": "Organization",
				"name":  "",
			},
			"offers": map[string]any{
				"@type":         "Offer",
				"priceCurrency": "",
				"price":         "",
				"availability":  "",
				"seller": map[string]any{
					"@type": "Organization",
					"name":  "",
				},
			},
			"aggregateRating": map[string]any{
				"@type":       "AggregateRating",
				"ratingValue": "",
				"reviewCount": "",
			},
			"sku":      "",
			"mpn":      "",
			"category": "",
			"review":   []any{},
		},
	},
	{
		category:    CategoryRecipe,
		description: "Recipe with ingredients, instructions, and nutritional info",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "Recipe",
			"name":        "",
			"description": "",
			"image":       "",
			"author": map[string]any{
				"@type": "Person",
				"name":  "",
			},
			"datePublished":      "",
			"prepTime":           "",
			"cookTime":           "",
			"totalTime":          "",
			"recipeYield":        "",
			"recipeCategory":     "",
			"recipeCuisine":      "",
			"recipeIngredient":   []any{},
			"recipeInstructions": []any{},
			"nutrition": map[string]any{
				"@type":    "NutritionInformation",
				"calories": "",
			},
			"aggregateRating": map[string]any{
				"@type":       "AggregateRating",
				"ratingValue": "",
				"reviewCount": "",
			},
		},
	},
	{
		category:    CategoryEvent,
		description: "Event with date, location, and ticketing information",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "Event",
			"name":        "",
			"description": "",
			"image":       "",
			"startDate":   "",
			"endDate":     "",
			"location": map[string]any{
				"@type": "Place",
				"name":  "",
				"address": map[string]any{
					"@type":           "PostalAddress",
					"streetAddress":   "",
					"addressLocality": "",
					"addressRegion":   "",
					"postalCode":      "",
					"addressCountry":  "",
				},
			},
			"organizer": map[string]any{
				"@type": "Organization",
				"name":  "",
				"url":   "",
			},
			"offers": map[string]any{
				"@type":         "Offer",
				"price":         "",
				"priceCurrency": "",
				"availability":  "",
				"url":           "",
			},
			"performer": map[string]any{
				"@type": "Person",
				"name":  "",
			},
			"eventStatus": "https://schema.org/EventScheduled",
		},
	},
	{
		category:    CategoryVideoObject,
		description: "Video content with metadata and publishing details",
		skeleton: Markup{
			"@context":     SchemaContext,
			"@type":        "VideoObject",
			"name":         "",
			"description":  "",
			"thumbnailUrl": "",
			"uploadDate":   "",
			"duration":     "",
			"contentUrl":   "",
			"embedUrl":     "",
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "",
				"logo": map[string]any{
					"@type": "ImageObject",
					"url":   "",
				},
			},
			"creator": map[string]any{
				"@type": "Person",
				"name":  "",
			},
			"keywords": []any{},
		},
	},
	{
		category:    CategoryReview,
		description: "Review with rating and detailed feedback",
		skeleton: Markup{
			"@context":   SchemaContext,
			"@type":      "Review",
			"reviewBody": "",
			"reviewRating": map[string]any{
				"@type":       "Rating",
				"ratingValue": "",
				"bestRating":  "5",
				"worstRating": "1",
			},
			"author": map[string]any{
				"@type": "Person",
				"name":  "",
			},
			"itemReviewed": map[string]any{
				"@type": "Thing",
				"name":  "",
			},
			"datePublished": "",
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "",
			},
		},
	},
	{
		category:    CategoryFAQPage,
		description: "FAQ page with questions and answers",
		skeleton: Markup{
			"@context": SchemaContext,
			"@type":    "FAQPage",
			"mainEntity": []any{map[string]any{
				"@type": "Question",
				"name":  "",
				"acceptedAnswer": map[string]any{
					"@type": "Answer",
					"text":  "",
				},
			}},
		},
	},
	{
		category:    CategoryHowTo,
		description: "Step-by-step guide with instructions and materials",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "HowTo",
			"name":        "",
			"description": "",
			"image":       "",
			"totalTime":   "",
			"estimatedCost": map[string]any{
				"@type":    "MonetaryAmount",
				"currency": "USD",
				"value":    "",
			},
			"supply": []any{},
			"tool":   []any{},
			"step": []any{map[string]any{
				"@type": "HowToStep",
				"name":  "",
				"text":  "",
				"image": "",
			}},
		},
	},
	{
		category:    CategoryPerson,
		description: "Person profile with professional and personal details",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "Person",
			"name":        "",
			"url":         "",
			"image":       "",
			"description": "",
			"jobTitle":    "",
			"worksFor": map[string]any{
				"@type": "Organization",
				"name":  "",
			},
			"sameAs":     []any{},
			"knowsAbout": []any{},
			"alumniOf": map[string]any{
				"@type": "Organization",
				"name":  "",
			},
			"address": map[string]any{
				"@type":           "PostalAddress",
				"addressLocality": "",
				"addressRegion":   "",
				"addressCountry":  "",
			},
		},
	},
	{
		category:    CategoryWebPage,
		description: "General webpage schema with metadata",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "WebPage",
			"name":        "",
			"description": "",
			"url":         "",
			"image":       "",
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "",
			},
			"datePublished": "",
			"dateModified":  "",
			"inLanguage":    "",
			"mainEntity": map[string]any{
				"@type": "Thing",
				"name":  "",
			},
			"breadcrumb": map[string]any{
				"@type":           "BreadcrumbList",
				"itemListElement": []any{},
			},
			"speakable": map[string]any{
				"@type":       "SpeakableSpecification",
				"cssSelector": []any{},
			},
		},
	},
	{
		category:    CategoryEntitySchema,
		description: "Detailed entity schema emphasizing business expertise and knowledge",
		skeleton: Markup{
			"@context":    SchemaContext,
			"@type":       "WebPage",
			"name":        "",
			"description": "",
			"url":         "",
			"image":       "",
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "",
				"url":   "",
				"logo":  "",
			},
			"mainEntity": map[string]any{
				"@type":       "Organization",
				"name":        "",
				"description": "",
				"url":         "",
				"knowsAbout":  []any{},
				"subjectOf":   []any{},
				"keywords":    []any{},
				"sameAs":      []any{},
			},
			"keywords":    []any{},
			"about":       []any{},
			"mentions":    []any{},
			"relatedLink": []any{},
		},
	},
}
