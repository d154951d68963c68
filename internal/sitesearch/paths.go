// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// filterMarker matches the start of the filter suffix the API appends to
// the echoed query (e.g. " more:pagemap:document-type:pdf").
var filterMarker = regexp.MustCompile(`\smore:p.*`)

// SeparateSearchTermFromFilters splits an echoed query into the plain
// search term and its filter suffix. ok is false when there is no suffix,
// in which case term is s unchanged.
func SeparateSearchTermFromFilters(s string) (term, filters string, ok bool) {
	loc := filterMarker.FindStringIndex(s)
	if loc == nil {
		return s, "", false
	}
	return strings.TrimSpace(s[:loc[0]]), strings.TrimSpace(s[loc[0]:loc[1]]), true
}

// RelativePath drops the scheme and host from an absolute URL, keeping
// path and query. Relative input is returned as is, so applying it twice
// gives the same result as applying it once. Opaque URLs such as
// mailto:x@y are rejected.
func RelativePath(path string) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %q: %v", ErrInvalidArgument, path, err)
	}
	if u.Opaque != "" {
		return "", fmt.Errorf("%w: %q has no path", ErrInvalidArgument, path)
	}
	if !u.IsAbs() && u.Host == "" {
		return path, nil
	}
	rel := u.EscapedPath()
	// A leading "//" would read back as a host.
	rel = "/" + strings.TrimLeft(rel, "/")
	if u.RawQuery != "" {
		rel += "?" + u.RawQuery
	}
	return rel, nil
}
