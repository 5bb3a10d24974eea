// Package seo assembles document metadata for the playbook page: title,
// description, canonical URL, social cards, and JSON-LD payloads.
package seo

import "html/template"

// OpenGraph holds the og: card fields.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

// Twitter holds the twitter: card fields.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the full head metadata block for the page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	FontHref    string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []template.JS
}

// PlaybookFont is the single web-font stylesheet the page links.
const PlaybookFont = "https://fonts.googleapis.com/css2?family=Inter:wght@400;600;800&family=JetBrains+Mono:wght@400;600&display=swap"

// ForPlaybook builds the page metadata from the configured site identity.
func ForPlaybook(siteName, baseURL string) Meta {
	title := "The Playbook — " + siteName
	desc := "A complete field guide to a discretionary trading methodology: " +
		"market structure, liquidity, killzones, entry models, and the risk " +
		"framework that holds them together."
	m := Meta{
		Title:       title,
		Description: desc,
		Canonical:   baseURL + "/",
		FontHref:    PlaybookFont,
		OG: OpenGraph{
			Title:       title,
			Description: desc,
			Type:        "article",
			URL:         baseURL + "/",
			SiteName:    siteName,
		},
		Twitter: Twitter{Card: "summary_large_image"},
	}
	m.JSONLD = []template.JS{
		template.JS(JSON(Article(title, desc, baseURL+"/"))),
		template.JS(JSON(Organization(siteName, baseURL, ""))),
	}
	return m
}
