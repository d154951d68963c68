// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewURLBuilderValidatesArguments(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		query   string
		wantErr bool
	}{
		{"both empty", "", "", true},
		{"empty query", "string", "", true},
		{"empty base", "", "string", true},
		{"blank base", "   ", "string", true},
		{"both present", "string", "string", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewURLBuilder(tt.base, tt.query, Options{})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, b)
		})
	}
}

func TestURLBuilderDefaults(t *testing.T) {
	b, err := NewURLBuilder("http://www.google.com", "red shoes", Options{})
	require.NoError(t, err)

	assert.Equal(t,
		"http://www.google.com/search?client=google-csbe&output=xml_no_dtd&q=red+shoes",
		b.URL())
	assert.Equal(t, b.URL(), b.String())
}

func TestURLBuilderOptions(t *testing.T) {
	b, err := NewURLBuilder("http://example.com/", "cats & dogs", Options{
		Path:           "custom",
		SearchEngineID: "0123:abc",
		Site:           "example.com/blog",
		Start:          10,
		Num:            20,
	})
	require.NoError(t, err)

	got := b.URL()
	assert.True(t, strings.HasPrefix(got, "http://example.com/custom?"), got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "google-csbe", q.Get("client"))
	assert.Equal(t, "xml_no_dtd", q.Get("output"))
	assert.Equal(t, "cats & dogs", q.Get("q"))
	assert.Equal(t, "0123:abc", q.Get("cx"))
	assert.Equal(t, "example.com/blog", q.Get("as_sitesearch"))
	assert.Equal(t, "10", q.Get("start"))
	assert.Equal(t, "20", q.Get("num"))
	assert.Contains(t, got, "q=cats+%26+dogs")
	assert.Contains(t, got, "cx=0123%3Aabc")
}

func TestURLBuilderCallerOverridesDefaults(t *testing.T) {
	b, err := NewURLBuilder("http://example.com", "cats", Options{
		Extra: Params{
			{Key: "output", Value: "xml"},
			{Key: "filter", Value: "0"},
		},
	})
	require.NoError(t, err)

	p := b.Params()
	out, ok := p.Get("output")
	assert.True(t, ok)
	assert.Equal(t, "xml", out)

	// Overrides keep the key's original position.
	assert.Equal(t, "client=google-csbe&output=xml&q=cats&filter=0", p.Encode())
}

func TestURLBuilderOutputContainsEveryParam(t *testing.T) {
	extra := Params{{Key: "lr", Value: "lang_en"}, {Key: "hl", Value: "en"}, {Key: "client", Value: "mine"}}
	b, err := NewURLBuilder("https://search.example.org", "über straße", Options{Extra: extra})
	require.NoError(t, err)

	got := b.URL()
	assert.True(t, strings.HasPrefix(got, "https://search.example.org"))
	for _, kv := range b.Params() {
		assert.Contains(t, got, url.QueryEscape(kv.Key)+"="+url.QueryEscape(kv.Value))
	}
	assert.NotContains(t, got, "google-csbe")
}

func TestParamsSetAndGet(t *testing.T) {
	var p Params
	p = p.Set("a", "1").Set("b", "2").Set("a", "3")

	require.Len(t, p, 2)
	v, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = p.Get("missing")
	assert.False(t, ok)
}

func TestDefaultParamsAreFresh(t *testing.T) {
	p := DefaultParams()
	p.Set("client", "changed")

	v, _ := DefaultParams().Get("client")
	assert.Equal(t, "google-csbe", v)
}
