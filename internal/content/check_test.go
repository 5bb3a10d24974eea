package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// page builds a minimal document with one section per chapter.
func page(t *testing.T, mutate func(s string) string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString(`<html><head><title>The Playbook</title><meta name="description" content="field guide"></head><body><nav>`)
	for _, c := range Chapters {
		b.WriteString(`<a href="#` + c.ID + `">` + c.Label + `</a>`)
	}
	b.WriteString(`</nav>`)
	for _, c := range Chapters {
		b.WriteString(`<section id="` + c.ID + `"></section>`)
	}
	b.WriteString(`</body></html>`)
	doc := b.String()
	if mutate != nil {
		doc = mutate(doc)
	}
	return doc
}

func TestCheckCleanPage(t *testing.T) {
	issues, err := Check(strings.NewReader(page(t, nil)))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckMissingSection(t *testing.T) {
	doc := page(t, func(s string) string {
		return strings.Replace(s, `<section id="glossary">`, `<section id="glossry">`, 1)
	})
	issues, err := Check(strings.NewReader(doc))
	require.NoError(t, err)
	kinds := kindSet(issues)
	assert.True(t, kinds["missing-section"], "issues: %v", issues)
	assert.True(t, kinds["dangling-fragment"], "issues: %v", issues)
}

func TestCheckDuplicateID(t *testing.T) {
	doc := page(t, func(s string) string {
		return s + `<div id="sessions"></div>`
	})
	// appended after </html>; parser hoists it into body
	issues, err := Check(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, kindSet(issues)["duplicate-id"], "issues: %v", issues)
}

func TestCheckEmptyTitle(t *testing.T) {
	doc := page(t, func(s string) string {
		return strings.Replace(s, "<title>The Playbook</title>", "<title></title>", 1)
	})
	issues, err := Check(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, kindSet(issues)["metadata"], "issues: %v", issues)
}

func TestCheckMissingDescription(t *testing.T) {
	doc := page(t, func(s string) string {
		return strings.Replace(s, `<meta name="description" content="field guide">`, "", 1)
	})
	issues, err := Check(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, kindSet(issues)["metadata"], "issues: %v", issues)
}

func kindSet(issues []Issue) map[string]bool {
	m := map[string]bool{}
	for _, i := range issues {
		m[i.Kind] = true
	}
	return m
}
