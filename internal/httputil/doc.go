// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the single-request HTTP helper used by the
// site search client.
package httputil
