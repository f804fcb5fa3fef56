// Package web holds the HTML templates of the site, embedded into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// NewEngine returns the fiber view engine over the embedded templates.
// Views are addressed by path without extension, e.g. "index" or "partials/portfolio".
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("web: failed to open templates: %w", err)
	}
	return NewEngineFS(sub), nil
}

// NewEngineFS builds the engine over any template filesystem.
func NewEngineFS(fsys fs.FS) *html.Engine {
	engine := html.NewFileSystem(http.FS(fsys), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"ms": func(d time.Duration) int64 {
			return d.Milliseconds()
		},
		"activeIf": func(ok bool) string {
			if ok {
				return "active"
			}
			return ""
		},
		"slideOffset": func(index int) template.CSS {
			return template.CSS(fmt.Sprintf("transform: translateX(-%d%%)", index*100))
		},
		// tel: links are not in html/template's URL scheme allowlist.
		"telURL": func(href string) template.URL {
			if !strings.HasPrefix(href, "tel:") {
				return template.URL("#")
			}
			return template.URL(href)
		},
		"dict": dict,
	}
}

// dict builds a map from alternating keys and values so partials can take named arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
