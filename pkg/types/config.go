package types

import "time"

// Defaults applied when a setting is left unset.
const (
	DefaultBaseURL = "http://www.google.com"
	DefaultPath    = "/search"
	DefaultTimeout = 10 * time.Second
)

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout bounds a single request, connect through body read.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "site-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SiteSearchConfig holds settings for talking to the site search endpoint.
type SiteSearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the scheme and host of the endpoint. Pagination links
	// returned by the API are relative to it.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Path is the search path appended to BaseURL (default "/search").
	Path string `json:"path" yaml:"path"`

	// SearchEngineID is the cx identifier of the custom search engine.
	SearchEngineID string `json:"search_engine_id,omitempty" yaml:"search_engine_id,omitempty"`
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c SiteSearchConfig) WithDefaults() SiteSearchConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
