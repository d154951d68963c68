// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func parsed(t *testing.T, doc string) *Result {
	t.Helper()
	var r Result
	require.NoError(t, r.UnmarshalSearchXML([]byte(doc)))
	return &r
}

func TestFormatTable(t *testing.T) {
	r := parsed(t, sampleXML)

	var buf bytes.Buffer
	FormatTable([]*Result{r}, &buf)
	out := buf.String()

	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "Red Shoes | Shop")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "http://shop.example.com/ruby")
	assert.Contains(t, out, "2 results (about 1240 total)")
	assert.Contains(t, out, "Next: /search?q=red+shoes&start=20")
}

func TestFormatTableEmpty(t *testing.T) {
	r := parsed(t, `<GSP><Q>qwzxv</Q><Spelling><Suggestion q="quiz">quiz</Suggestion></Spelling></GSP>`)

	var buf bytes.Buffer
	FormatTable([]*Result{r}, &buf)
	assert.Equal(t, "No results found.\nDid you mean: quiz\n", buf.String())

	buf.Reset()
	FormatTable(nil, &buf)
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	r := parsed(t, sampleXML)

	var buf bytes.Buffer
	require.NoError(t, FormatJSON([]*Result{r}, &buf))

	var pages []Page
	require.NoError(t, json.Unmarshal(buf.Bytes(), &pages))
	require.Len(t, pages, 1)
	assert.Equal(t, "red shoes", pages[0].SearchTerm)
	assert.Equal(t, "more:pagemap:product-type:shoe", pages[0].Filters)
	assert.Equal(t, "/search?q=red+shoes&start=20", pages[0].NextResults)
	require.Len(t, pages[0].Entries, 2)
	assert.Equal(t, "Red Shoes | Shop", pages[0].Entries[0].Title)
}

func TestFormatYAMLOmitsAbsentLinks(t *testing.T) {
	r := parsed(t, pageXML(1, ""))

	var buf bytes.Buffer
	require.NoError(t, FormatYAML([]*Result{r}, &buf))
	out := buf.String()

	assert.NotContains(t, out, "next_results_url")
	assert.True(t, strings.HasPrefix(out, "- search_term: cats"), out)

	var pages []Page
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &pages))
	require.Len(t, pages, 1)
	assert.Equal(t, "Cat 1", pages[0].Entries[0].Title)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ñññññññ...", truncate(strings.Repeat("ñ", 20), 10))
}
