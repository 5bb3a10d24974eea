package seo

import (
	json "github.com/goccy/go-json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on
// error; script blocks simply omit the payload.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Article returns a schema.org Article for the playbook page.
func Article(headline, description, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": headline,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["mainEntityOfPage"] = url
	}
	return m
}

// Organization returns a minimal schema.org Organization.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// BreadcrumbItem maps a crumb name to its absolute URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds a schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}
