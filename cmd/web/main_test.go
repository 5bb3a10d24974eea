package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/playbooklab/playbook-web/internal/config"
	"github.com/playbooklab/playbook-web/internal/content"
)

// testConfig points the server at the repo-root templates and assets.
func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.TemplatesDir = "../../templates"
	cfg.PublicDir = "../../public"
	return cfg
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	srv, err := newServer(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}
	t.Cleanup(func() { srv.Close() })
	return srv.routes()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Fatalf("expected body 'ok', got %q", got)
	}
}

func TestPlaybookPageRenders(t *testing.T) {
	rec := get(t, newTestServer(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!doctype html>") {
		t.Fatalf("page does not start with doctype: %.40q", body)
	}
}

// TestContentContract runs the consistency check the check command uses:
// one section per TOC chapter, unique ids, resolvable fragments, and
// exactly one non-empty title and description.
func TestContentContract(t *testing.T) {
	rec := get(t, newTestServer(t), "/")
	issues, err := content.Check(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, is := range issues {
		t.Errorf("content issue: %s", is)
	}
}

// tableRows returns the number of tbody rows in the table carrying the
// given class.
func tableRows(t *testing.T, body []byte, class string) int {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	rows := 0
	var inTable func(*html.Node) bool
	inTable = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "table" {
			for _, a := range n.Attr {
				if a.Key == "class" && strings.Contains(a.Val, class) {
					return true
				}
			}
		}
		return false
	}
	var walk func(*html.Node, bool, bool)
	walk = func(n *html.Node, inside, inBody bool) {
		if n.Type == html.ElementNode {
			if inTable(n) {
				inside = true
			}
			if inside && n.Data == "tbody" {
				inBody = true
			}
			if inBody && n.Data == "tr" {
				rows++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inside, inBody)
		}
	}
	walk(doc, false, false)
	return rows
}

func TestTablesRenderOneRowPerEntry(t *testing.T) {
	body := get(t, newTestServer(t), "/").Body.Bytes()
	cases := []struct {
		class string
		want  int
	}{
		{"killzone-table", len(content.Killzones)},
		{"glossary-table", len(content.Glossary)},
		{"rating-table", len(content.DayRatings)},
		{"pdarray-table", len(content.PDArrayItems)},
		{"risk-table", len(content.RiskRules)},
		{"stdev-table", len(content.DeviationLevels)},
	}
	for _, tc := range cases {
		if got := tableRows(t, body, tc.class); got != tc.want {
			t.Errorf("%s: got %d rows, want %d", tc.class, got, tc.want)
		}
	}
}

func TestRatingStarsRendered(t *testing.T) {
	body := get(t, newTestServer(t), "/").Body.String()
	// Monday is a literal 2/5 in the day-rating table
	if !strings.Contains(body, "★★☆☆☆") {
		t.Error("expected a 2/5 star row")
	}
	// Tuesday's 4.5 rounds half-up to five filled stars
	if !strings.Contains(body, "★★★★★") {
		t.Error("expected a 5/5 star row")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	srv := newTestServer(t)
	a := get(t, srv, "/").Body.Bytes()
	b := get(t, srv, "/").Body.Bytes()
	if !bytes.Equal(a, b) {
		t.Fatal("two renders of the same page differ")
	}
}

func TestDashboardLinkPresentOnce(t *testing.T) {
	cfg := testConfig()
	srv, err := newServer(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}
	defer srv.Close()
	body := get(t, srv.routes(), "/").Body.String()
	if got := strings.Count(body, `href="`+cfg.DashboardURL+`"`); got != 1 {
		t.Fatalf("dashboard link count = %d, want 1", got)
	}
}

func TestSecurityHeadersOnPage(t *testing.T) {
	rec := get(t, newTestServer(t), "/")
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing nosniff header")
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing CSP header")
	}
}

func TestAssetsServedWithCacheHeaders(t *testing.T) {
	rec := get(t, newTestServer(t), "/assets/css/playbook.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age") {
		t.Errorf("unexpected Cache-Control %q", cc)
	}
}

func TestCollectAcknowledged(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/collect", strings.NewReader("{}")))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRenderAndCheck(t *testing.T) {
	issues, err := renderAndCheck(testConfig())
	if err != nil {
		t.Fatalf("renderAndCheck: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("expected clean page, got %v", issues)
	}
}

func TestRenderPage(t *testing.T) {
	page, err := renderPage(testConfig())
	if err != nil {
		t.Fatalf("renderPage: %v", err)
	}
	if !bytes.HasPrefix(page, []byte("<!doctype html>")) {
		t.Fatal("export output missing doctype")
	}
	if !bytes.Contains(page, []byte("application/ld+json")) {
		t.Fatal("export output missing JSON-LD metadata")
	}
}
