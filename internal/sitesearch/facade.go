// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitesearch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Query runs a single Search for rawURL. When fn is non-nil it is called
// with the parsed page before Query returns it.
func Query[T any, P DocumentPtr[T]](ctx context.Context, client *Client, rawURL string, fn func(P)) (P, error) {
	doc, err := NewSearch[T, P](client, rawURL).Query(ctx)
	if err != nil {
		return nil, err
	}
	if fn != nil {
		fn(doc)
	}
	return doc, nil
}

// QueryMultiple fetches up to times pages starting at rawURL, following
// each page's next link. It stops early on the first page without one.
// On error the pages fetched so far are returned along with it.
func QueryMultiple[T any, P DocumentPtr[T]](ctx context.Context, client *Client, times int, rawURL string, fn func(P)) ([]P, error) {
	if times < 1 {
		return nil, fmt.Errorf("%w: times must be at least 1, got %d", ErrInvalidArgument, times)
	}

	pages := make([]P, 0, times)
	next := rawURL
	for len(pages) < times {
		doc, err := Query[T, P](ctx, client, next, fn)
		if err != nil {
			return pages, fmt.Errorf("page %d: %w", len(pages)+1, err)
		}
		pages = append(pages, doc)

		rel, ok := doc.NextResultsURL()
		if !ok {
			break
		}
		next = client.Paginate(rel)
	}

	zerolog.Ctx(ctx).Debug().
		Int("pages", len(pages)).
		Int("requested", times).
		Msg("Finished paged site search")
	return pages, nil
}
