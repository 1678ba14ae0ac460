package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/missinglocales/internal/ctxlog"
	"github.com/specialistvlad/missinglocales/internal/locales"
	"github.com/specialistvlad/missinglocales/internal/report"
	"golang.org/x/sync/errgroup"
)

// Run executes the comparison and writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.",
		"pontoon", a.config.PontoonProject,
		"repo", a.config.Owner+"/"+a.config.Repo,
		"path", a.config.Path,
		"concurrent", a.config.ConcurrentFetch,
	)

	pontoonLocales, repoLocales, err := a.fetch(ctx)
	if err != nil {
		a.warnStaleReport()
		return err
	}

	result := locales.Result(repoLocales, pontoonLocales)
	a.logger.Info("Comparison finished.",
		"pontoon_locales", len(pontoonLocales),
		"repository_locales", len(repoLocales),
		"missing", len(result)-1,
	)

	if err := report.Write(a.config.Output, result); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return report.Confirm(a.outW, a.config.Output)
}

// fetch retrieves both locale lists, one after the other unless concurrent
// fetching is enabled. The first failure aborts the run.
func (a *App) fetch(ctx context.Context) (pontoonLocales, repoLocales []string, err error) {
	if !a.config.ConcurrentFetch {
		if pontoonLocales, err = a.fetchPontoon(ctx); err != nil {
			return nil, nil, err
		}
		if repoLocales, err = a.fetchRepo(ctx); err != nil {
			return nil, nil, err
		}
		return pontoonLocales, repoLocales, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pontoonLocales, err = a.fetchPontoon(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		repoLocales, err = a.fetchRepo(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pontoonLocales, repoLocales, nil
}

func (a *App) fetchPontoon(ctx context.Context) ([]string, error) {
	codes, err := a.pontoon.Locales(ctx, a.config.PontoonProject)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Pontoon locales: %w", err)
	}
	return codes, nil
}

func (a *App) fetchRepo(ctx context.Context) ([]string, error) {
	codes, err := a.github.Locales(ctx, a.config.Owner, a.config.Repo, a.config.Path, a.ignore)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository locales: %w", err)
	}
	return codes, nil
}

// warnStaleReport flags a report left over from an earlier run, since a
// failed run does not touch it.
func (a *App) warnStaleReport() {
	if _, err := os.Stat(a.config.Output); err == nil {
		a.logger.Warn("Run failed; existing report was left untouched and does not reflect this run.",
			"path", a.config.Output)
	}
}
