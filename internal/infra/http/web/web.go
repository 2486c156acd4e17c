// Package web embeds the single page served at /.
package web

import (
	"embed"
	"html/template"
)

//go:embed index.html
var files embed.FS

// PageData fills the connection, methods and results panels on first load.
type PageData struct {
	Lang              string
	Connected         bool
	StatusLabel       string
	IDInstance        string
	APITokenInstance  string
	LoadingText       string
	LabelConnected    string
	LabelDisconnected string
}

// ParsePage fails when the page asset is missing or broken; the server
// refuses to start in that case.
func ParsePage() (*template.Template, error) {
	return template.ParseFS(files, "index.html")
}
