package schemagen_test

import (
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry_GetReturnsSkeletonWithContextAndType(t *testing.T) {
	t.Parallel()

	registry := schemagen.NewTemplateRegistry()

	for _, category := range registry.List() {
		skeleton := registry.Get(category)
		assert.Equal(t, schemagen.SchemaContext, skeleton["@context"], "category %s", category)
		assert.NotEmpty(t, skeleton.Type(), "category %s", category)
	}
}

func TestTemplateRegistry_GetReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	registry := schemagen.NewTemplateRegistry()

	first := registry.Get(schemagen.CategoryOrganization)
	first["name"] = "mutated"
	addr := first["address"].(map[string]any)
	addr["streetAddress"] = "mutated"

	second := registry.Get(schemagen.CategoryOrganization)
	assert.Equal(t, "", second["name"])
	assert.Equal(t, "", second["address"].(map[string]any)["streetAddress"])
}

func TestTemplateRegistry_UnknownCategoryFallsBackToOrganization(t *testing.T) {
	t.Parallel()

	registry := schemagen.NewTemplateRegistry()

	skeleton := registry.Get(schemagen.Category("NoSuchThing"))

	require.NotNil(t, skeleton)
	assert.Equal(t, "Organization", skeleton.Type())
}

func TestTemplateRegistry_EntitySchemaUsesWebPageContainer(t *testing.T) {
	t.Parallel()

	registry := schemagen.NewTemplateRegistry()

	skeleton := registry.Get(schemagen.CategoryEntitySchema)

	assert.Equal(t, "WebPage", skeleton.Type())
	mainEntity := skeleton["mainEntity"].(map[string]any)
	assert.Equal(t, "Organization", mainEntity["@type"])
}

func TestTemplateRegistry_ListIsStable(t *testing.T) {
	t.Parallel()

	registry := schemagen.NewTemplateRegistry()

	assert.Equal(t, registry.List(), registry.List())
	assert.Len(t, registry.List(), 15)
}

func TestSuggestCategory_TotalOverAllPageTypes(t *testing.T) {
	t.Parallel()

	for _, pt := range schemagen.PageTypes {
		assert.NotEmpty(t, schemagen.SuggestCategory(pt), "page type %s", pt)
	}
}

func TestSuggestCategory_Mappings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pageType schemagen.PageType
		want     schemagen.Category
	}{
		{schemagen.PageTypeHomepage, schemagen.CategoryOrganization},
		{schemagen.PageTypeProduct, schemagen.CategoryProduct},
		{schemagen.PageTypeBlog, schemagen.CategoryArticle},
		{schemagen.PageTypeNews, schemagen.CategoryNewsArticle},
		{schemagen.PageTypeLocation, schemagen.CategoryLocalBusiness},
		{schemagen.PageTypeTeam, schemagen.CategoryPerson},
		{schemagen.PageType("unknown"), schemagen.CategoryWebPage},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, schemagen.SuggestCategory(tt.pageType), "page type %s", tt.pageType)
	}
}
