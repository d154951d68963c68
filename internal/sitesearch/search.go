// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/site-search/internal/httputil"
	"github.com/pdiddy/site-search/pkg/types"
)

// Client carries the endpoint settings and the HTTP client shared by
// every request.
type Client struct {
	cfg  types.SiteSearchConfig
	http *http.Client
}

// NewClient returns a Client for cfg. Unset fields take their defaults.
func NewClient(cfg types.SiteSearchConfig) *Client {
	cfg = cfg.WithDefaults()
	return &Client{cfg: cfg, http: httputil.NewClient(cfg.HTTPConfig)}
}

// NewClientWithHTTP is NewClient with a caller-supplied http.Client (for
// tests or custom transports).
func NewClientWithHTTP(cfg types.SiteSearchConfig, hc *http.Client) *Client {
	c := NewClient(cfg)
	if hc != nil {
		c.http = hc
	}
	return c
}

// BuildURL builds a request URL for query against the configured base.
// Configured path and search engine id apply unless opts sets them.
func (c *Client) BuildURL(query string, opts Options) (string, error) {
	if opts.Path == "" {
		opts.Path = c.cfg.Path
	}
	if opts.SearchEngineID == "" {
		opts.SearchEngineID = c.cfg.SearchEngineID
	}
	b, err := NewURLBuilder(c.cfg.BaseURL, query, opts)
	if err != nil {
		return "", err
	}
	return b.URL(), nil
}

// Paginate turns a relative link from NextResultsURL or
// PreviousResultsURL into an absolute URL on the configured base. An
// absolute link is first reduced to its path and query.
func (c *Client) Paginate(path string) string {
	if u, err := url.Parse(path); err == nil && (u.IsAbs() || u.Host != "") {
		if rel, err := RelativePath(path); err == nil {
			path = rel
		}
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

// RequestXML fetches rawURL and returns the body of a 2xx response.
func (c *Client) RequestXML(ctx context.Context, rawURL string) (string, error) {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return string(resp.Body), nil
}

func (c *Client) get(ctx context.Context, rawURL string) (*httputil.Response, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: url is empty", ErrInvalidArgument)
	}
	log := zerolog.Ctx(ctx).With().
		Str("component", "sitesearch").
		Str("request_id", uuid.NewString()).
		Logger()
	log.Debug().Str("url", rawURL).Msg("Requesting site search page")

	resp, err := httputil.GetXML(ctx, c.http, rawURL, c.cfg.UserAgent)
	if err != nil {
		log.Debug().Err(err).Msg("Site search request failed")
		return nil, err
	}
	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(resp.Body)).
		Dur("elapsed", resp.Elapsed).
		Msg("Received site search page")
	return resp, nil
}

// Search is one request/parse cycle for a single URL.
type Search[T any, P DocumentPtr[T]] struct {
	URL string

	client *Client
	xml    string
	result P
}

// NewSearch prepares a search for rawURL. Nothing is sent until Query.
func NewSearch[T any, P DocumentPtr[T]](client *Client, rawURL string) *Search[T, P] {
	return &Search[T, P]{URL: rawURL, client: client}
}

// Query performs the request and parses the body into a new T. The raw
// body and the parsed value stay available on s afterwards.
func (s *Search[T, P]) Query(ctx context.Context) (P, error) {
	resp, err := s.client.get(ctx, s.URL)
	if err != nil {
		return nil, err
	}
	s.xml = string(resp.Body)

	doc := P(new(T))
	if err := doc.UnmarshalSearchXML(resp.Body); err != nil {
		return nil, err
	}
	s.result = doc
	return doc, nil
}

// XML returns the raw response body of the last successful Query.
func (s *Search[T, P]) XML() string { return s.xml }

// Result returns the parsed page, or nil before a successful Query.
func (s *Search[T, P]) Result() P { return s.result }
