// Package github lists repository directories through the GitHub REST
// contents API and picks out the ones that look like locale folders.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/specialistvlad/missinglocales/internal/ctxlog"
	"github.com/specialistvlad/missinglocales/internal/httpclient"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// DefaultOwner is the organisation holding Mozilla's localization repositories.
const DefaultOwner = "mozilla-l10n"

// TypeDir is the entry type GitHub reports for directories.
const TypeDir = "dir"

const service = "github"

// ErrNotDirectory is returned when the contents API describes a single file
// instead of listing a directory.
var ErrNotDirectory = errors.New("github: path is not a directory")

// Entry is one item of a contents listing.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Matcher decides whether a directory name must be skipped.
type Matcher interface {
	Match(name string) bool
}

// Client talks to the contents API.
type Client struct {
	http    *resty.Client
	baseURL string
}

// New returns a Client using http for transport. An empty baseURL selects
// DefaultBaseURL.
func New(http *resty.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: http, baseURL: strings.TrimRight(baseURL, "/")}
}

// ContentsPath returns the escaped API path for a repository path. Slashes
// inside p are kept as separators; an empty p addresses the repository root.
func ContentsPath(owner, repo, p string) string {
	raw := fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, p)
	segments := strings.Split(raw, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// Contents lists the entries at p in owner/repo, in the order GitHub returns them.
func (c *Client) Contents(ctx context.Context, owner, repo, p string) ([]Entry, error) {
	logger := ctxlog.FromContext(ctx).With("service", service, "repo", owner+"/"+repo, "path", p)
	endpoint := c.baseURL + ContentsPath(owner, repo, p)
	logger.Debug("Listing repository contents.", "url", endpoint)

	r, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github+json").
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("github: list %s/%s/%s: %w", owner, repo, p, err)
	}
	if err := httpclient.CheckStatus(service, r); err != nil {
		return nil, err
	}

	entries, err := DecodeEntries(r.Body())
	if err != nil {
		return nil, fmt.Errorf("%s/%s path %q: %w", owner, repo, p, err)
	}
	logger.Debug("Repository contents listed.", "entries", len(entries))
	return entries, nil
}

// Locales lists p and returns the names of its locale directories.
func (c *Client) Locales(ctx context.Context, owner, repo, p string, ignore Matcher) ([]string, error) {
	entries, err := c.Contents(ctx, owner, repo, p)
	if err != nil {
		return nil, err
	}
	codes := FilterLocales(entries, ignore)
	ctxlog.FromContext(ctx).Info("Repository locales fetched.",
		"service", service, "repo", owner+"/"+repo, "path", p, "count", len(codes))
	return codes, nil
}

// DecodeEntries parses a contents listing. A JSON object, which GitHub
// returns when the path names a file, yields ErrNotDirectory.
func DecodeEntries(body []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return nil, ErrNotDirectory
	}
	var entries []Entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &httpclient.DecodeError{Service: service, Reason: "expected a JSON array", Err: err}
	}
	if entries == nil {
		return nil, &httpclient.DecodeError{Service: service, Reason: "expected a JSON array, got null"}
	}
	return entries, nil
}

// FilterLocales keeps directories that are neither ignored nor hidden.
func FilterLocales(entries []Entry, ignore Matcher) []string {
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type != TypeDir || e.Name == "" {
			continue
		}
		if strings.HasPrefix(e.Name, ".") {
			continue
		}
		if ignore != nil && ignore.Match(e.Name) {
			continue
		}
		codes = append(codes, e.Name)
	}
	return codes
}
