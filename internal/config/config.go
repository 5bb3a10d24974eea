// Package config resolves server configuration from an optional YAML file
// and environment overrides. Zero config yields a runnable server.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the resolved server configuration.
type Config struct {
	Addr         string `yaml:"addr"`
	BaseURL      string `yaml:"base_url"`
	SiteName     string `yaml:"site_name"`
	DashboardURL string `yaml:"dashboard_url"`
	AnalyticsID  string `yaml:"analytics_id"`
	Dev          bool   `yaml:"dev"`

	TemplatesDir string `yaml:"templates_dir"`
	PublicDir    string `yaml:"public_dir"`
}

// Defaults make the binary runnable with no file and no environment.
func Defaults() Config {
	return Config{
		Addr:         ":8080",
		BaseURL:      "https://playbooklab.io",
		SiteName:     "Playbook Lab",
		DashboardURL: "https://app.playbooklab.io/dashboard",
		TemplatesDir: "templates",
		PublicDir:    "public",
	}
}

// Load reads path (if it exists) over the defaults, then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// optional file
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv mirrors the port resolution order the deploy targets expect:
// PLAYBOOK_ADDR wins, then Cloud Run's PORT, then the file/default value.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PLAYBOOK_ADDR"); v != "" {
		cfg.Addr = v
	} else if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("PLAYBOOK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PLAYBOOK_DASHBOARD_URL"); v != "" {
		cfg.DashboardURL = v
	}
	if os.Getenv("PLAYBOOK_DEV") != "" || os.Getenv("DEV") != "" {
		cfg.Dev = true
	}
}
