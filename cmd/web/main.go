package main

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/playbooklab/playbook-web/internal/config"
	"github.com/playbooklab/playbook-web/internal/watch"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:   "playbook",
		Short: "Serve and check The Playbook page",
		Long: `playbook renders The Playbook — a single long-form page on a
discretionary trading methodology — from its literal content tables and
template partials.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "playbook.yaml", "config file path")
	root.AddCommand(serveCmd(), checkCmd(), exportCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Dev)
			if err != nil {
				return err
			}
			defer log.Sync()

			srv, err := newServer(cfg, log)
			if err != nil {
				return err
			}
			defer srv.Close()

			httpSrv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           srv.routes(),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				log.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("dev", cfg.Dev))
				errc <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if err != nil && err != http.ErrServerClosed {
					return fmt.Errorf("listen: %w", err)
				}
				return nil
			case <-ctx.Done():
				log.Info("shutting down")
				shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutCtx)
			}
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Render the page and verify the content-consistency contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			issues, err := renderAndCheck(cfg)
			if err != nil {
				return err
			}
			for _, is := range issues {
				fmt.Fprintln(cmd.ErrOrStderr(), is)
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d content issue(s)", len(issues))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the page to a static HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			page, err := renderPage(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, page, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(page))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "index.html", "output file")
	return cmd
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// templateCache holds the parsed template set. Production parses once; in
// dev mode an fsnotify watcher marks the set dirty and the next render
// reparses.
type templateCache struct {
	dir string

	mu      sync.RWMutex
	tmpl    *template.Template
	watcher *watch.Watcher
}

func newTemplateCache(dir string, w *watch.Watcher) (*templateCache, error) {
	c := &templateCache{dir: dir, watcher: w}
	t, err := parseTemplates(dir)
	if err != nil {
		return nil, err
	}
	c.tmpl = t
	if w != nil {
		w.ConsumeDirty() // initial parse covered it
	}
	return c, nil
}

func (c *templateCache) get() (*template.Template, error) {
	if c.watcher != nil && c.watcher.ConsumeDirty() {
		t, err := parseTemplates(c.dir)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.tmpl = t
		c.mu.Unlock()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tmpl, nil
}

// parseTemplates discovers and parses every .tmpl under dir. ParseGlob has
// no ** support, so walk instead.
func parseTemplates(dir string) (*template.Template, error) {
	var files []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	return template.New("_root").ParseFiles(files...)
}
