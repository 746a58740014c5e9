// Package static embeds the console's stylesheet.
package static

import "embed"

// FS holds the embedded static assets.
//
//go:embed app.css
var FS embed.FS
