package seo

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPlaybook(t *testing.T) {
	m := ForPlaybook("Playbook Lab", "https://playbooklab.io")
	assert.True(t, strings.HasPrefix(m.Title, "The Playbook"))
	assert.Contains(t, m.Title, "Playbook Lab")
	assert.NotEmpty(t, m.Description)
	assert.Equal(t, "https://playbooklab.io/", m.Canonical)
	assert.Equal(t, "article", m.OG.Type)
	assert.Equal(t, "summary_large_image", m.Twitter.Card)
	require.Len(t, m.JSONLD, 2)
	for _, ld := range m.JSONLD {
		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(ld), &parsed))
		assert.Equal(t, "https://schema.org", parsed["@context"])
	}
}

func TestArticleShape(t *testing.T) {
	a := Article("headline", "desc", "https://example.test/")
	assert.Equal(t, "Article", a["@type"])
	assert.Equal(t, "headline", a["headline"])
	assert.Equal(t, "desc", a["description"])
	assert.Equal(t, "https://example.test/", a["mainEntityOfPage"])
}

func TestOrganizationOmitsEmpty(t *testing.T) {
	o := Organization("Lab", "", "")
	_, hasURL := o["url"]
	_, hasLogo := o["logo"]
	assert.False(t, hasURL)
	assert.False(t, hasLogo)
}

func TestBreadcrumbList(t *testing.T) {
	b := BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://example.test/"},
		{Name: "Playbook", Item: "https://example.test/playbook"},
	})
	el := b["itemListElement"].([]map[string]any)
	require.Len(t, el, 2)
	assert.Equal(t, 1, el[0]["position"])
	assert.Equal(t, "Playbook", el[1]["name"])
}

func TestJSONOnUnmarshalable(t *testing.T) {
	assert.Equal(t, "", JSON(func() {}))
}
