// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/site-search/pkg/types"
)

// ErrInvalidArgument is returned for empty or malformed caller input.
var ErrInvalidArgument = errors.New("invalid argument")

// Param is one query string pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Keys are unique: Set
// overwrites an existing key where it stands, so encoding order is the
// order in which keys were first introduced.
type Params []Param

// DefaultParams are sent with every request unless overridden.
func DefaultParams() Params {
	return Params{
		{Key: "client", Value: "google-csbe"},
		{Key: "output", Value: "xml_no_dtd"},
	}
}

// Set returns p with key set to value. Like append, it may reuse p's
// backing array.
func (p Params) Set(key, value string) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Merge applies every pair of other on top of p; other wins on conflict.
func (p Params) Merge(other Params) Params {
	for _, kv := range other {
		p = p.Set(kv.Key, kv.Value)
	}
	return p
}

// Encode renders p as a URL-encoded query string in order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// Options are the caller-supplied request settings. Zero values are left
// out of the request.
type Options struct {
	// Path is appended to the base URL (default "/search").
	Path string

	// SearchEngineID is the cx parameter.
	SearchEngineID string

	// Site restricts results to one site (as_sitesearch).
	Site string

	// Start is the 0-based offset of the first result.
	Start int

	// Num is the number of results per page.
	Num int

	// Extra is applied last and overrides anything above, defaults included.
	Extra Params
}

func (o Options) params() Params {
	var p Params
	if o.SearchEngineID != "" {
		p = p.Set("cx", o.SearchEngineID)
	}
	if o.Site != "" {
		p = p.Set("as_sitesearch", o.Site)
	}
	if o.Start > 0 {
		p = p.Set("start", strconv.Itoa(o.Start))
	}
	if o.Num > 0 {
		p = p.Set("num", strconv.Itoa(o.Num))
	}
	return p.Merge(o.Extra)
}

// URLBuilder composes a request URL from a base, a search term and options.
type URLBuilder struct {
	base  string
	query string
	opts  Options
}

// NewURLBuilder validates its input. Both base and query must be non-empty.
func NewURLBuilder(base, query string, opts Options) (*URLBuilder, error) {
	if strings.TrimSpace(base) == "" {
		return nil, fmt.Errorf("%w: base url is empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is empty", ErrInvalidArgument)
	}
	return &URLBuilder{base: base, query: query, opts: opts}, nil
}

// Params returns the merged parameter list: defaults, then q, then options.
func (b *URLBuilder) Params() Params {
	p := DefaultParams().Set("q", b.query)
	return p.Merge(b.opts.params())
}

// URL returns the final request URL.
func (b *URLBuilder) URL() string {
	path := b.opts.Path
	if path == "" {
		path = types.DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(b.base, "/") + path + "?" + b.Params().Encode()
}

func (b *URLBuilder) String() string { return b.URL() }
