// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the site-search client.
package types

// Entry is one result item within a search response page.
type Entry struct {
	// Index is the 1-based rank of the entry across all pages (the N attribute).
	Index int `json:"index" yaml:"index"`

	// Title is the result title. The API returns it with inline markup
	// such as <b> around matched terms.
	Title string `json:"title" yaml:"title"`

	// Link is the absolute URL of the result.
	Link string `json:"link" yaml:"link"`

	// Snippet is the descriptive excerpt, with inline markup.
	Snippet string `json:"snippet" yaml:"snippet"`
}
