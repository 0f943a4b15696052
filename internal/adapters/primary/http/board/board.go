// Package board serves the single-page ticket board embedded in the binary.
// It is a thin UI shell over the JSON API; it holds no state of its own.
package board

import (
	_ "embed"
	"net/http"
)

//go:embed board.html
var boardHTML []byte

// Handler returns an http.Handler serving the board page.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(boardHTML)
	})
}
