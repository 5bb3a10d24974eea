// Package nav builds the table of contents and fragment links from the
// chapter list. The page has a single route, so navigation is entirely
// fragment-based.
package nav

import "github.com/playbooklab/playbook-web/internal/content"

// TOCItem is a view model for one table-of-contents row.
type TOCItem struct {
	ID    string
	Href  string
	Num   string
	Label string
}

// TOC renders the chapter list as anchor links in page order.
func TOC() []TOCItem {
	items := make([]TOCItem, 0, len(content.Chapters))
	for _, c := range content.Chapters {
		items = append(items, TOCItem{
			ID:    c.ID,
			Href:  Fragment(c.ID),
			Num:   c.Num,
			Label: c.Label,
		})
	}
	return items
}

// Fragment returns the fragment href for an anchor id, e.g. "#sessions".
func Fragment(id string) string { return "#" + id }
