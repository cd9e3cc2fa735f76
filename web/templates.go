// Package web holds the embedded HTML pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded pages for the gin renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
