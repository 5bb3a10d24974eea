package content

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Issue is one content-consistency violation found in the rendered page.
// Broken anchors are authoring mistakes, so they surface through the check
// command and tests rather than any runtime path.
type Issue struct {
	Kind   string
	Detail string
}

func (i Issue) String() string { return i.Kind + ": " + i.Detail }

// Check parses the rendered page and verifies the structural contract:
// unique element ids, one section per chapter, resolvable fragment links,
// and exactly one non-empty title and meta description.
func Check(r io.Reader) ([]Issue, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	ids := map[string]int{}
	var fragments []string
	titles := 0
	titleText := ""
	descriptions := 0
	description := ""

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val != "" {
					ids[a.Val]++
				}
			}
			switch n.Data {
			case "a":
				for _, a := range n.Attr {
					if a.Key == "href" && strings.HasPrefix(a.Val, "#") && len(a.Val) > 1 {
						fragments = append(fragments, strings.TrimPrefix(a.Val, "#"))
					}
				}
			case "title":
				titles++
				if n.FirstChild != nil {
					titleText = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var name, contentAttr string
				for _, a := range n.Attr {
					switch a.Key {
					case "name":
						name = a.Val
					case "content":
						contentAttr = a.Val
					}
				}
				if name == "description" {
					descriptions++
					description = strings.TrimSpace(contentAttr)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var issues []Issue
	for id, n := range ids {
		if n > 1 {
			issues = append(issues, Issue{Kind: "duplicate-id", Detail: fmt.Sprintf("%q appears %d times", id, n)})
		}
	}
	for _, c := range Chapters {
		switch ids[c.ID] {
		case 0:
			issues = append(issues, Issue{Kind: "missing-section", Detail: fmt.Sprintf("chapter %q has no section anchor", c.ID)})
		case 1:
			// ok
		}
	}
	for _, f := range fragments {
		if ids[f] == 0 {
			issues = append(issues, Issue{Kind: "dangling-fragment", Detail: fmt.Sprintf("link #%s has no target", f)})
		}
	}
	if titles != 1 || titleText == "" {
		issues = append(issues, Issue{Kind: "metadata", Detail: fmt.Sprintf("want exactly one non-empty <title>, got %d (%q)", titles, titleText)})
	}
	if descriptions != 1 || description == "" {
		issues = append(issues, Issue{Kind: "metadata", Detail: fmt.Sprintf("want exactly one non-empty meta description, got %d", descriptions)})
	}
	return issues, nil
}
