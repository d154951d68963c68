// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/site-search/pkg/types"
)

// PlainText strips inline markup and entities from a title or snippet and
// collapses whitespace. Input that is not valid markup is returned with
// whitespace collapsed.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapseSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpace(s)
	}
	return collapseSpace(doc.Text())
}

// PlainTitle returns e.Title without markup.
func PlainTitle(e types.Entry) string { return PlainText(e.Title) }

// PlainSnippet returns e.Snippet without markup.
func PlainSnippet(e types.Entry) string { return PlainText(e.Snippet) }

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
