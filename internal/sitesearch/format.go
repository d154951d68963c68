// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/site-search/pkg/types"
)

// Page is the serializable view of a Result, with optionals flattened to
// omitempty fields and markup stripped from titles and snippets.
type Page struct {
	SearchTerm      string        `json:"search_term" yaml:"search_term"`
	Filters         string        `json:"filters,omitempty" yaml:"filters,omitempty"`
	Spelling        string        `json:"spelling,omitempty" yaml:"spelling,omitempty"`
	EstimatedTotal  int64         `json:"estimated_total" yaml:"estimated_total"`
	StartIndex      int           `json:"start_index" yaml:"start_index"`
	EndIndex        int           `json:"end_index" yaml:"end_index"`
	NextResults     string        `json:"next_results_url,omitempty" yaml:"next_results_url,omitempty"`
	PreviousResults string        `json:"previous_results_url,omitempty" yaml:"previous_results_url,omitempty"`
	Entries         []types.Entry `json:"entries" yaml:"entries"`
}

// NewPage builds the view of r.
func NewPage(r *Result) Page {
	p := Page{
		SearchTerm:     r.SearchTerm,
		EstimatedTotal: r.EstimatedTotal,
		StartIndex:     r.StartIndex,
		EndIndex:       r.EndIndex,
		Entries:        make([]types.Entry, 0, len(r.Entries)),
	}
	p.Filters, _ = r.Filters()
	p.Spelling, _ = r.Spelling()
	p.NextResults, _ = r.NextResultsURL()
	p.PreviousResults, _ = r.PreviousResultsURL()
	for _, e := range r.Entries {
		e.Title = PlainTitle(e)
		e.Snippet = PlainSnippet(e)
		p.Entries = append(p.Entries, e)
	}
	return p
}

func newPages(results []*Result) []Page {
	pages := make([]Page, 0, len(results))
	for _, r := range results {
		pages = append(pages, NewPage(r))
	}
	return pages
}

// FormatTable writes the entries of every page as a human-readable table.
func FormatTable(results []*Result, w io.Writer) {
	total := 0
	for _, r := range results {
		total += len(r.Entries)
	}
	if total == 0 {
		fmt.Fprintln(w, "No results found.")
		if len(results) > 0 {
			if s, ok := results[0].Spelling(); ok {
				fmt.Fprintf(w, "Did you mean: %s\n", s)
			}
		}
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %s\n", "Rank", "Title", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range results {
		for _, e := range r.Entries {
			fmt.Fprintf(w, "%-4d  %-50s  %s\n", e.Index, truncate(PlainTitle(e), 50), e.Link)
		}
	}

	last := results[len(results)-1]
	fmt.Fprintf(w, "\n%d results", total)
	if last.EstimatedTotal > 0 {
		fmt.Fprintf(w, " (about %d total)", last.EstimatedTotal)
	}
	fmt.Fprintln(w)
	if next, ok := last.NextResultsURL(); ok {
		fmt.Fprintf(w, "Next: %s\n", next)
	}
}

// FormatJSON writes the pages as indented JSON.
func FormatJSON(results []*Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newPages(results))
}

// FormatYAML writes the pages as a YAML sequence.
func FormatYAML(results []*Result, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newPages(results)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
