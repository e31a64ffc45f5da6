// Package web holds the embedded browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Index returns the SPA entry page.
func Index() []byte {
	data, err := content.ReadFile("static/index.html")
	if err != nil {
		return nil
	}
	return data
}

// Assets returns the static asset tree rooted at static/.
func Assets() http.FileSystem {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		return http.FS(content)
	}
	return http.FS(sub)
}
