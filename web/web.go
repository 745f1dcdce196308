// Package web holds the storefront page and its static assets.
package web

import "embed"

// Files is rooted at this directory: index.html and static/.
//
//go:embed index.html static
var Files embed.FS
