package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/missinglocales/internal/app"
	"github.com/specialistvlad/missinglocales/internal/config"
	"github.com/specialistvlad/missinglocales/internal/hcl"
	"github.com/specialistvlad/missinglocales/internal/locales"
	"github.com/stretchr/testify/require"
)

// staticLoader returns a fixed model regardless of path.
type staticLoader struct {
	model *config.Model
	err   error
}

func (l staticLoader) Load(ctx context.Context, path string) (*config.Model, error) {
	return l.model, l.err
}

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		loader         config.Loader
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Required flags and defaults",
			args: []string{"--pontoon", "firefox", "--repo", "firefox-l10n"},
			expectedConfig: &app.Config{
				PontoonProject: "firefox",
				Repo:           "firefox-l10n",
				Owner:          "mozilla-l10n",
				Path:           "",
				Output:         "output.csv",
				Ignore:         []string{"templates", "configs"},
				LogFormat:      "text",
				LogLevel:       "info",
			},
		},
		{
			name: "All flags",
			args: []string{
				"--pontoon=focus-android",
				"--repo=android-l10n",
				"--owner=mozilla-mobile",
				"--path", "mozilla-mobile/focus-android",
				"--output=focus.csv",
				"--concurrent-fetch",
				"--log-format=JSON",
				"--log-level=DEBUG",
			},
			expectedConfig: &app.Config{
				PontoonProject:  "focus-android",
				Repo:            "android-l10n",
				Owner:           "mozilla-mobile",
				Path:            "mozilla-mobile/focus-android",
				Output:          "focus.csv",
				Ignore:          []string{"templates", "configs"},
				ConcurrentFetch: true,
				LogFormat:       "json",
				LogLevel:        "debug",
			},
		},
		{
			name: "Settings file fills unset flags only",
			args: []string{"--pontoon", "p", "--repo", "r", "--owner", "flag-owner", "--config", "settings.hcl"},
			loader: staticLoader{model: &config.Model{
				PontoonEndpoint: "http://pontoon.local/graphql",
				GitHubEndpoint:  "http://github.local",
				Owner:           "file-owner",
				Path:            strPtr("locales"),
				Output:          "file.csv",
				Ignore:          []string{"templates", "configs", "_*"},
				Timeout:         "10s",
				UserAgent:       "bot",
			}},
			expectedConfig: &app.Config{
				PontoonProject:  "p",
				Repo:            "r",
				Owner:           "flag-owner",
				Path:            "locales",
				Output:          "file.csv",
				SettingsPath:    "settings.hcl",
				PontoonEndpoint: "http://pontoon.local/graphql",
				GitHubEndpoint:  "http://github.local",
				Ignore:          []string{"_*"},
				Timeout:         10 * time.Second,
				UserAgent:       "bot",
				LogFormat:       "text",
				LogLevel:        "info",
			},
		},
		{
			name:   "Explicit empty path beats settings file",
			args:   []string{"--pontoon", "p", "--repo", "r", "--path=", "--config", "s.hcl"},
			loader: staticLoader{model: &config.Model{Path: strPtr("locales")}},
			expectedConfig: &app.Config{
				PontoonProject: "p",
				Repo:           "r",
				Owner:          "mozilla-l10n",
				Path:           "",
				Output:         "output.csv",
				SettingsPath:   "s.hcl",
				Ignore:         []string{"templates", "configs"},
				LogFormat:      "text",
				LogLevel:       "info",
			},
		},
		{
			name:       "Help flag",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "-pontoon")
				require.Contains(t, output, "mozilla-l10n")
			},
		},
		{
			name:      "Missing pontoon",
			args:      []string{"--repo", "r"},
			expectErr: "missing required flag: --pontoon",
		},
		{
			name:      "Missing repo",
			args:      []string{"--pontoon", "p"},
			expectErr: "missing required flag: --repo",
		},
		{
			name:      "Unknown flag",
			args:      []string{"--pontoon", "p", "--repo", "r", "--token=x"},
			expectErr: "flag provided but not defined: -token",
		},
		{
			name:      "Positional arguments are rejected",
			args:      []string{"--pontoon", "p", "--repo", "r", "extra"},
			expectErr: "unexpected arguments: extra",
		},
		{
			name:      "Invalid log format",
			args:      []string{"--pontoon", "p", "--repo", "r", "--log-format=xml"},
			expectErr: "invalid log-format",
		},
		{
			name:      "Invalid log level",
			args:      []string{"--pontoon", "p", "--repo", "r", "--log-level=trace"},
			expectErr: "invalid log-level",
		},
		{
			name:      "Settings loader failure",
			args:      []string{"--pontoon", "p", "--repo", "r", "--config", "bad.hcl"},
			loader:    staticLoader{err: errors.New("failed to parse settings file bad.hcl")},
			expectErr: "failed to parse settings file bad.hcl",
		},
		{
			name:      "Invalid timeout in settings",
			args:      []string{"--pontoon", "p", "--repo", "r", "--config", "s.hcl"},
			loader:    staticLoader{model: &config.Model{Timeout: "soon"}},
			expectErr: `invalid timeout "soon" in settings file`,
		},
		{
			name:      "Invalid ignore pattern in settings",
			args:      []string{"--pontoon", "p", "--repo", "r", "--config", "s.hcl"},
			loader:    staticLoader{model: &config.Model{Ignore: []string{"["}}},
			expectErr: "invalid ignore pattern",
		},
		{
			name:      "Config flag without loader",
			args:      []string{"--pontoon", "p", "--repo", "r", "--config", "s.hcl"},
			expectErr: "no settings loader",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cfg, shouldExit, err := Parse(context.Background(), tc.args, &out, tc.loader)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParse_WithHCLSettingsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
owner   = "mozilla-mobile"
path    = "fenix"
ignore  = ["templates", "configs", "values"]
timeout = "1m"
`), 0o600))

	cfg, shouldExit, err := Parse(context.Background(), []string{"--pontoon", "fenix", "--repo", "android-l10n", "--config", path}, &bytes.Buffer{}, hcl.NewLoader())
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "mozilla-mobile", cfg.Owner)
	require.Equal(t, "fenix", cfg.Path)
	require.Equal(t, []string{"templates", "configs", "values"}, cfg.Ignore)
	require.Equal(t, time.Minute, cfg.Timeout)
}

func TestParse_SettingsIgnoreExtendsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "s.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`ignore = ["_*"]`), 0o600))

	cfg, _, err := Parse(context.Background(), []string{"--pontoon", "p", "--repo", "r", "--config", path}, &bytes.Buffer{}, hcl.NewLoader())
	require.NoError(t, err)
	require.Equal(t, []string{"templates", "configs", "_*"}, cfg.Ignore)

	ignore, err := locales.NewIgnoreSet(cfg.Ignore...)
	require.NoError(t, err)
	require.True(t, ignore.Match("templates"))
	require.True(t, ignore.Match("configs"))
	require.True(t, ignore.Match("_build"))
	require.False(t, ignore.Match("fr"))
}
