package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/missinglocales/internal/config"
	"github.com/specialistvlad/missinglocales/internal/ctxlog"
	"github.com/specialistvlad/missinglocales/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// settingsFile is the HCL schema of a settings file.
type settingsFile struct {
	PontoonEndpoint string   `hcl:"pontoon_endpoint,optional"`
	GitHubEndpoint  string   `hcl:"github_endpoint,optional"`
	Owner           string   `hcl:"owner,optional"`
	Path            *string  `hcl:"path,optional"`
	Output          string   `hcl:"output,optional"`
	Ignore          []string `hcl:"ignore,optional"`
	Timeout         string   `hcl:"timeout,optional"`
	UserAgent       string   `hcl:"user_agent,optional"`
}

// Loader reads HCL settings files.
type Loader struct {
	// Environ supplies the variables exposed as `env`. It defaults to os.Environ.
	Environ func() []string
}

// NewLoader creates a Loader reading the real process environment.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load reads the settings at path. A directory is expanded to every .hcl
// file below it, decoded in lexical order; a value set in a later file
// overrides the same value from an earlier one.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.ExpandPath(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	logger.Debug("Loading settings files.", "path", path, "files", files)

	model := &config.Model{}
	parser := hclparse.NewParser()
	for _, f := range files {
		s, err := l.decodeFile(parser, f)
		if err != nil {
			return nil, err
		}
		merge(model, s)
	}

	logger.Debug("Settings loaded.", "path", path, "settings", model)
	return model, nil
}

func (l *Loader) decodeFile(parser *hclparse.Parser, path string) (*settingsFile, error) {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var s settingsFile
	if diags := gohcl.DecodeBody(file.Body, l.evalContext(), &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	return &s, nil
}

// merge copies every value set in s into model.
func merge(model *config.Model, s *settingsFile) {
	if s.PontoonEndpoint != "" {
		model.PontoonEndpoint = s.PontoonEndpoint
	}
	if s.GitHubEndpoint != "" {
		model.GitHubEndpoint = s.GitHubEndpoint
	}
	if s.Owner != "" {
		model.Owner = s.Owner
	}
	if s.Path != nil {
		model.Path = s.Path
	}
	if s.Output != "" {
		model.Output = s.Output
	}
	if s.Ignore != nil {
		model.Ignore = s.Ignore
	}
	if s.Timeout != "" {
		model.Timeout = s.Timeout
	}
	if s.UserAgent != "" {
		model.UserAgent = s.UserAgent
	}
}

func (l *Loader) evalContext() *hcl.EvalContext {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(environ()),
		},
		Functions: functions(),
	}
}
