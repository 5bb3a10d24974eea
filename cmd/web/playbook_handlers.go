package main

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/playbooklab/playbook-web/internal/config"
	"github.com/playbooklab/playbook-web/internal/content"
	mw "github.com/playbooklab/playbook-web/internal/middleware"
	"github.com/playbooklab/playbook-web/internal/watch"
)

// server wires config, logging, and the template cache behind the router.
type server struct {
	cfg     config.Config
	log     *zap.Logger
	tmpl    *templateCache
	watcher *watch.Watcher
}

func newServer(cfg config.Config, log *zap.Logger) (*server, error) {
	var w *watch.Watcher
	if cfg.Dev {
		var err error
		w, err = watch.New(cfg.TemplatesDir, log)
		if err != nil {
			return nil, fmt.Errorf("watch templates: %w", err)
		}
	}
	tc, err := newTemplateCache(cfg.TemplatesDir, w)
	if err != nil {
		if w != nil {
			w.Close()
		}
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &server{cfg: cfg, log: log, tmpl: tc, watcher: w}, nil
}

// Close releases the dev-mode watcher, if any.
func (s *server) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Behind the load balancer RealIP trusts X-Forwarded-For; only trusted
	// proxies may set it in production.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(s.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(mw.SecurityHeaders)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pageview beacons from analytics.js land here; acknowledged, not stored.
	r.Post("/collect", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(s.cfg.PublicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", s.handlePlaybook)
	return r
}

// handlePlaybook renders the whole page. The view is rebuilt from constant
// content per request; rendering goes through a buffer so a template error
// never emits a torn page.
func (s *server) handlePlaybook(w http.ResponseWriter, r *http.Request) {
	t, err := s.tmpl.get()
	if err != nil {
		s.log.Error("template parse", zap.Error(err))
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", BuildPlaybookView(s.cfg)); err != nil {
		s.log.Error("template exec", zap.Error(err))
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// renderPage renders the full page to bytes without a server, for the
// check and export commands.
func renderPage(cfg config.Config) ([]byte, error) {
	t, err := parseTemplates(cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", BuildPlaybookView(cfg)); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// renderAndCheck renders the page and runs the content-consistency check.
func renderAndCheck(cfg config.Config) ([]content.Issue, error) {
	page, err := renderPage(cfg)
	if err != nil {
		return nil, err
	}
	return content.Check(bytes.NewReader(page))
}
