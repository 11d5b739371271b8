package endpoints

import (
	"bytes"
	_ "embed"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/nwcdlabs/codecommit-admin/pkg/server"
)

//go:embed apidoc.md
var apidoc []byte

// RegisterDocsEndpoints serves the rendered API documentation at the root
// path. The markdown source ships embedded in the binary and is rendered
// once at registration time.
func RegisterDocsEndpoints(s *server.Server) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert(apidoc, &buf); err != nil {
		// The source is embedded, so a conversion failure is a build
		// problem; fall back to serving the raw markdown.
		buf.Reset()
		buf.Write(apidoc)
	}
	page := buf.Bytes()

	s.Router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}).Methods("GET")
}
