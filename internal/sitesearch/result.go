// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/site-search/pkg/types"
)

// Document is a parsed response page. Search, Query and QueryMultiple
// accept any type whose pointer implements it, so callers can decode extra
// elements by embedding Result or writing their own type.
type Document interface {
	// UnmarshalSearchXML populates the receiver from a raw response body.
	UnmarshalSearchXML(data []byte) error

	// NextResultsURL returns the relative link to the next page, if any.
	NextResultsURL() (string, bool)
}

// DocumentPtr constrains P to be *T implementing Document.
type DocumentPtr[T any] interface {
	*T
	Document
}

// Result is the default Document: the entries and pagination of one page.
type Result struct {
	// SearchTerm is the echoed query without its filter suffix.
	SearchTerm string `json:"search_term" yaml:"search_term"`

	// Entries are the result items in document order.
	Entries []types.Entry `json:"entries" yaml:"entries"`

	// EstimatedTotal is the API's estimate of the total hit count.
	EstimatedTotal int64 `json:"estimated_total" yaml:"estimated_total"`

	// StartIndex and EndIndex are the 1-based ranks of the first and last
	// entries on this page; both are 0 when the page is empty.
	StartIndex int `json:"start_index" yaml:"start_index"`
	EndIndex   int `json:"end_index" yaml:"end_index"`

	filters  *string
	next     *string
	previous *string
	spelling *string
}

// gspDocument mirrors the parts of the XML response Result reads.
type gspDocument struct {
	XMLName  xml.Name    `xml:"GSP"`
	Query    string      `xml:"Q"`
	Res      *gspRes     `xml:"RES"`
	Spelling gspSpelling `xml:"Spelling"`
}

type gspRes struct {
	Start   int         `xml:"SN,attr"`
	End     int         `xml:"EN,attr"`
	Total   string      `xml:"M"`
	Nav     gspNav      `xml:"NB"`
	Results []gspResult `xml:"R"`
}

type gspNav struct {
	Next     string `xml:"NU"`
	Previous string `xml:"PU"`
}

type gspResult struct {
	N       int    `xml:"N,attr"`
	URL     string `xml:"U"`
	Title   string `xml:"T"`
	Snippet string `xml:"S"`
}

type gspSpelling struct {
	Suggestions []struct {
		Q string `xml:"q,attr"`
	} `xml:"Suggestion"`
}

// UnmarshalSearchXML decodes a GSP response. A response with no RES
// element (no hits) is a valid, empty page.
func (r *Result) UnmarshalSearchXML(data []byte) error {
	var doc gspDocument
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parsing site search response: %w", err)
	}

	*r = Result{}
	term, filters, ok := SeparateSearchTermFromFilters(strings.TrimSpace(doc.Query))
	r.SearchTerm = term
	if ok {
		r.filters = &filters
	}
	if len(doc.Spelling.Suggestions) > 0 {
		r.spelling = optional(doc.Spelling.Suggestions[0].Q)
	}

	if doc.Res == nil {
		return nil
	}
	r.StartIndex = doc.Res.Start
	r.EndIndex = doc.Res.End
	r.EstimatedTotal = parseTotal(doc.Res.Total)
	var err error
	if r.next, err = pageLink(doc.Res.Nav.Next); err != nil {
		return fmt.Errorf("parsing site search response: next link: %w", err)
	}
	if r.previous, err = pageLink(doc.Res.Nav.Previous); err != nil {
		return fmt.Errorf("parsing site search response: previous link: %w", err)
	}

	r.Entries = make([]types.Entry, 0, len(doc.Res.Results))
	for _, item := range doc.Res.Results {
		r.Entries = append(r.Entries, types.Entry{
			Index:   item.N,
			Title:   strings.TrimSpace(item.Title),
			Link:    strings.TrimSpace(item.URL),
			Snippet: strings.TrimSpace(item.Snippet),
		})
	}
	return nil
}

// NextResultsURL returns the relative URL of the next page.
func (r *Result) NextResultsURL() (string, bool) { return deref(r.next) }

// PreviousResultsURL returns the relative URL of the previous page.
func (r *Result) PreviousResultsURL() (string, bool) { return deref(r.previous) }

// Filters returns the filter suffix that was split off the echoed query.
func (r *Result) Filters() (string, bool) { return deref(r.filters) }

// Spelling returns the API's spelling suggestion for the query.
func (r *Result) Spelling() (string, bool) { return deref(r.spelling) }

// optional returns nil for an all-whitespace string.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// pageLink reduces a navigation link to path and query so it can always
// be handed to Client.Paginate, even when the API sends it absolute.
func pageLink(s string) (*string, error) {
	link := optional(s)
	if link == nil {
		return nil, nil
	}
	rel, err := RelativePath(*link)
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

// parseTotal reads the M element. Google sometimes formats it with
// thousands separators; anything unparseable counts as 0.
func parseTotal(s string) int64 {
	digits := strings.NewReplacer(",", "", ".", "").Replace(strings.TrimSpace(s))
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
