// Package pontoon fetches the locales a Pontoon project is localized into
// through Pontoon's public GraphQL endpoint.
package pontoon

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/specialistvlad/missinglocales/internal/ctxlog"
	"github.com/specialistvlad/missinglocales/internal/httpclient"
)

// DefaultEndpoint is the public Pontoon GraphQL endpoint.
const DefaultEndpoint = "https://pontoon.mozilla.org/graphql"

const service = "pontoon"

var (
	// ErrEmptySlug is returned when no project slug is given.
	ErrEmptySlug = errors.New("pontoon: project slug must not be empty")
	// ErrProjectNotFound is returned when Pontoon answers with a null project,
	// which is what happens for an unknown slug.
	ErrProjectNotFound = errors.New("pontoon: project not found")
)

// Client queries a Pontoon GraphQL endpoint.
type Client struct {
	http     *resty.Client
	endpoint string
}

// New returns a Client using http for transport. An empty endpoint selects
// DefaultEndpoint.
func New(http *resty.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{http: http, endpoint: endpoint}
}

// BuildQuery returns the GraphQL document requesting the localizations of slug.
func BuildQuery(slug string) string {
	return fmt.Sprintf("{project(slug:%s){name,localizations{locale{code}}}}", strconv.Quote(slug))
}

// Locales returns the locale codes of every localization of the project,
// in the order Pontoon lists them.
func (c *Client) Locales(ctx context.Context, slug string) ([]string, error) {
	if slug == "" {
		return nil, ErrEmptySlug
	}
	logger := ctxlog.FromContext(ctx).With("service", service, "project", slug)
	logger.Debug("Querying Pontoon project localizations.", "endpoint", c.endpoint)

	r, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("query", BuildQuery(slug)).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("pontoon: query project %q: %w", slug, err)
	}
	if err := httpclient.CheckStatus(service, r); err != nil {
		return nil, err
	}

	project, err := DecodeProject(r.Body())
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", slug, err)
	}
	codes, err := project.LocaleCodes()
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", slug, err)
	}

	logger.Info("Pontoon locales fetched.", "name", project.Name, "count", len(codes))
	return codes, nil
}
