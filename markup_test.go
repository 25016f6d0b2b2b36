package schemagen_test

import (
	"testing"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelOutput_DirectJSON(t *testing.T) {
	t.Parallel()

	m, err := schemagen.ParseModelOutput(`{"@type": "Organization", "name": "Acme"}`)

	require.NoError(t, err)
	assert.Equal(t, "Organization", m.Type())
	assert.Equal(t, "Acme", m["name"])
}

func TestParseModelOutput_FencedJSON(t *testing.T) {
	t.Parallel()

	text := "```json\n{\"@type\": \"Product\", \"name\": \"Widget\"}\n```"

	m, err := schemagen.ParseModelOutput(text)

	require.NoError(t, err)
	assert.Equal(t, "Product", m.Type())
}

func TestParseModelOutput_BareFence(t *testing.T) {
	t.Parallel()

	text := "```\n{\"@type\": \"Event\"}\n```"

	m, err := schemagen.ParseModelOutput(text)

	require.NoError(t, err)
	assert.Equal(t, "Event", m.Type())
}

func TestParseModelOutput_ObjectEmbeddedInProse(t *testing.T) {
	t.Parallel()

	text := `Here is the markup you asked for: {"@type": "Person", "name": "A {weird} name"} hope it helps!`

	m, err := schemagen.ParseModelOutput(text)

	require.NoError(t, err)
	assert.Equal(t, "Person", m.Type())
	assert.Equal(t, "A {weird} name", m["name"])
}

func TestParseModelOutput_Garbage(t *testing.T) {
	t.Parallel()

	_, err := schemagen.ParseModelOutput("I could not produce any markup, sorry.")

	require.Error(t, err)
	assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
}

func TestParseBalanced_BracesInsideStrings(t *testing.T) {
	t.Parallel()

	m, err := schemagen.ParseBalanced(`noise {"description": "uses { and } and \" freely", "@type": "Thing"} trailer`)

	require.NoError(t, err)
	assert.Equal(t, "Thing", m.Type())
}

func TestMerge_ModelValuesWin(t *testing.T) {
	t.Parallel()

	base := schemagen.Markup{"name": "from template", "url": "https://a.example"}
	over := schemagen.Markup{"name": "from model"}

	merged := schemagen.Merge(base, over)

	assert.Equal(t, "from model", merged["name"])
	assert.Equal(t, "https://a.example", merged["url"])
}

func TestMerge_EmptyValuesNeverErase(t *testing.T) {
	t.Parallel()

	base := schemagen.Markup{"name": "kept", "keywords": []any{"a"}}
	over := schemagen.Markup{"name": "", "keywords": []any{}}

	merged := schemagen.Merge(base, over)

	assert.Equal(t, "kept", merged["name"])
	assert.Equal(t, []any{"a"}, merged["keywords"])
}

func TestMerge_NestedObjectsMergeRecursively(t *testing.T) {
	t.Parallel()

	base := schemagen.Markup{"author": map[string]any{"@type": "Person", "name": "", "url": "https://a.example"}}
	over := schemagen.Markup{"author": map[string]any{"name": "Jane"}}

	merged := schemagen.Merge(base, over)

	author := merged["author"].(map[string]any)
	assert.Equal(t, "Jane", author["name"])
	assert.Equal(t, "https://a.example", author["url"])
	assert.Equal(t, "Person", author["@type"])
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := schemagen.Markup{"name": "base"}
	over := schemagen.Markup{"name": "over"}

	_ = schemagen.Merge(base, over)

	assert.Equal(t, "base", base["name"])
}

func TestClean_DropsEmptyTopLevelValues(t *testing.T) {
	t.Parallel()

	m := schemagen.Markup{
		"@type":    "Organization",
		"name":     "Acme",
		"logo":     "",
		"sameAs":   []any{},
		"address":  map[string]any{},
		"location": nil,
	}

	cleaned := schemagen.Clean(m)

	assert.Equal(t, "Acme", cleaned["name"])
	assert.NotContains(t, cleaned, "logo")
	assert.NotContains(t, cleaned, "sameAs")
	assert.NotContains(t, cleaned, "address")
	assert.NotContains(t, cleaned, "location")
}

func TestClean_DropsNestedObjectsWithOnlyTypeMarkers(t *testing.T) {
	t.Parallel()

	m := schemagen.Markup{
		"@type":  "Organization",
		"author": map[string]any{"@type": "Person", "name": ""},
	}

	cleaned := schemagen.Clean(m)

	assert.NotContains(t, cleaned, "author")
}

func TestClean_KeepsPopulatedNestedObjects(t *testing.T) {
	t.Parallel()

	m := schemagen.Markup{
		"@type":   "Organization",
		"address": map[string]any{"@type": "PostalAddress", "addressLocality": "Springfield", "postalCode": ""},
	}

	cleaned := schemagen.Clean(m)

	addr := cleaned["address"].(map[string]any)
	assert.Equal(t, "Springfield", addr["addressLocality"])
	assert.NotContains(t, addr, "postalCode")
}

func TestMarkup_MarshalIndent_RoundTrips(t *testing.T) {
	t.Parallel()

	m := schemagen.Markup{"@context": "https://schema.org", "@type": "WebPage", "name": "Test"}

	s, err := m.MarshalIndent()
	require.NoError(t, err)

	parsed, err := schemagen.ParseModelOutput(s)
	require.NoError(t, err)
	assert.Equal(t, "WebPage", parsed.Type())
}
