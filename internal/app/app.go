package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/missinglocales/internal/github"
	"github.com/specialistvlad/missinglocales/internal/httpclient"
	"github.com/specialistvlad/missinglocales/internal/locales"
	"github.com/specialistvlad/missinglocales/internal/pontoon"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	ignore  *locales.IgnoreSet
	pontoon *pontoon.Client
	github  *github.Client
}

// NewApp is the constructor for the main application. The confirmation line
// goes to outW; log records go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	ignore, err := locales.NewIgnoreSet(cfg.Ignore...)
	if err != nil {
		return nil, err
	}

	client := httpclient.New(httpclient.Options{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
	if cfg.Timeout == 0 {
		logger.Debug("No HTTP timeout configured; requests wait for the remote service indefinitely.")
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		ignore:  ignore,
		pontoon: pontoon.New(client, cfg.PontoonEndpoint),
		github:  github.New(client, cfg.GitHubEndpoint),
	}, nil
}
