package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/missinglocales/internal/github"
	"github.com/specialistvlad/missinglocales/internal/locales"
	"github.com/specialistvlad/missinglocales/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PontoonProject string // Pontoon project slug
	Repo           string
	Owner          string
	Path           string // directory holding the locale folders, "" is the root
	Output         string
	SettingsPath   string

	PontoonEndpoint string
	GitHubEndpoint  string
	Ignore          []string // added to locales.DefaultIgnore, never replacing it
	Timeout         time.Duration
	UserAgent       string
	ConcurrentFetch bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults for optional fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PontoonProject == "" {
		return nil, errors.New("PontoonProject is a required configuration field and cannot be empty")
	}
	if cfg.Repo == "" {
		return nil, errors.New("Repo is a required configuration field and cannot be empty")
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}

	if cfg.Owner == "" {
		cfg.Owner = github.DefaultOwner
	}
	if cfg.Output == "" {
		cfg.Output = report.DefaultPath
	}
	cfg.Ignore = locales.IgnorePatterns(cfg.Ignore...)
	if _, err := locales.NewIgnoreSet(cfg.Ignore...); err != nil {
		return nil, err
	}

	return &cfg, nil
}
