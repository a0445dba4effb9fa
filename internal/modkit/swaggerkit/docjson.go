package swaggerkit

import (
	_ "embed"
	"net/http"
)

// openapi.json is maintained by hand alongside the handlers it documents
//
//go:embed openapi.json
var docJSON []byte

// docReader is a seam so tests can substitute the document
var docReader = func() []byte { return docJSON }

// serveDocJSON serves the OpenAPI document the UI points at
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(docReader())
	}
}
