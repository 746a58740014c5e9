// Package templates embeds the console's HTML templates.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses all embedded templates. Each page template defines its own
// body and shares the layout blocks.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.tmpl")
}
