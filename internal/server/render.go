package server

import (
	"bytes"
	"fmt"

	g "maragu.dev/gomponents"

	"github.com/vcrobe/folio/internal/portfolio/site"
)

// RenderPage returns the complete host document for a route, with the route's
// markup pre-rendered inside #app.
func RenderPage(path string) ([]byte, error) {
	body, err := site.Prerender(path)
	if err != nil {
		return nil, err
	}
	return renderDocument(siteTitle, g.Raw(body))
}

func renderDocument(title string, body g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := document(title, body).Render(&buf); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderNotFound returns the 404 document, for static exports.
func RenderNotFound() ([]byte, error) {
	return renderDocument("Page not found | "+siteTitle, notFoundBody())
}
