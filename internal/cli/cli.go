package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/specialistvlad/missinglocales/internal/app"
	"github.com/specialistvlad/missinglocales/internal/config"
	"github.com/specialistvlad/missinglocales/internal/github"
	"github.com/specialistvlad/missinglocales/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
// When --config is given, loader reads the settings file; explicit flags win
// over settings, and settings win over defaults.
func Parse(ctx context.Context, args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("missinglocales", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
missinglocales - List locales present in a GitHub repository but missing in Pontoon.

Usage:
  missinglocales --pontoon SLUG --repo NAME [options]

The result is written as a one-column CSV file whose first line is
"Missing Locales".

Options:
`)
		flagSet.PrintDefaults()
	}

	pontoonFlag := flagSet.String("pontoon", "", "Pontoon project name (slug). Required.")
	repoFlag := flagSet.String("repo", "", "GitHub repository name. Required.")
	ownerFlag := flagSet.String("owner", github.DefaultOwner, "GitHub repository owner name.")
	pathFlag := flagSet.String("path", "", "GitHub path that contains locale folders.")
	outputFlag := flagSet.String("output", report.DefaultPath, "File the missing locales are written to.")
	configFlag := flagSet.String("config", "", "Optional HCL settings file.")
	concurrentFlag := flagSet.Bool("concurrent-fetch", false, "Query Pontoon and GitHub at the same time.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}
	if *pontoonFlag == "" {
		return nil, false, usageError("missing required flag: --pontoon")
	}
	if *repoFlag == "" {
		return nil, false, usageError("missing required flag: --repo")
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := app.Config{
		PontoonProject:  *pontoonFlag,
		Repo:            *repoFlag,
		Owner:           *ownerFlag,
		Path:            *pathFlag,
		Output:          *outputFlag,
		SettingsPath:    *configFlag,
		ConcurrentFetch: *concurrentFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	}

	if cfg.SettingsPath != "" {
		if loader == nil {
			return nil, false, usageError("--config given but no settings loader is available")
		}
		model, err := loader.Load(ctx, cfg.SettingsPath)
		if err != nil {
			return nil, false, usageError("%s", err.Error())
		}
		if err := applySettings(&cfg, model, explicit); err != nil {
			return nil, false, usageError("%s", err.Error())
		}
	}

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// applySettings copies every value set in model into cfg unless the matching
// flag was given explicitly.
func applySettings(cfg *app.Config, model *config.Model, explicit map[string]bool) error {
	if model.Owner != "" && !explicit["owner"] {
		cfg.Owner = model.Owner
	}
	if model.Path != nil && !explicit["path"] {
		cfg.Path = *model.Path
	}
	if model.Output != "" && !explicit["output"] {
		cfg.Output = model.Output
	}
	cfg.PontoonEndpoint = model.PontoonEndpoint
	cfg.GitHubEndpoint = model.GitHubEndpoint
	cfg.UserAgent = model.UserAgent
	if model.Ignore != nil {
		cfg.Ignore = model.Ignore
	}
	if model.Timeout != "" {
		timeout, err := time.ParseDuration(model.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in settings file: %w", model.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	return nil
}
