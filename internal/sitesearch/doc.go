// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sitesearch queries the Google Site Search XML API and parses its
// responses.
//
// A request URL is built with URLBuilder (or Client.BuildURL), fetched and
// decoded by Search, and paged with QueryMultiple, which follows each
// page's next link through Client.Paginate. Every call is a single
// blocking GET; nothing is retried or cached. A non-2xx response is an
// *httputil.UpstreamError, never an empty page.
package sitesearch
