// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; credentials go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	errs "learnhub/cli/internal/errors"
	"learnhub/cli/internal/xdg"
)

// DefaultAPIBaseURL is used when neither the environment nor the config
// file provides a backend address. It matches the development backend.
const DefaultAPIBaseURL = "http://localhost:3001/api"

// EnvAPIBaseURL overrides the configured backend address when set.
const EnvAPIBaseURL = "LEARNHUB_API_URL"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL string `json:"api_base_url"`
	LogLevel   string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// The LEARNHUB_API_URL environment variable takes precedence over the file.
// The result is resolved once at startup and handed to the API client;
// it is never re-read per request.
func Load() (Config, error) {
	c := Config{APIBaseURL: DefaultAPIBaseURL, LogLevel: "info"}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &c); err != nil {
			return c, errs.Wrap(errs.MalformedState, "config file is not valid JSON", err)
		}
		if c.APIBaseURL == "" {
			c.APIBaseURL = DefaultAPIBaseURL
		}
		if c.LogLevel == "" {
			c.LogLevel = "info"
		}
	}
	if env := strings.TrimSpace(os.Getenv(EnvAPIBaseURL)); env != "" {
		c.APIBaseURL = env
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
