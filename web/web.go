// Package web holds the embedded templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"quillblog/internal/utils"

	"github.com/gin-contrib/multitemplate"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Views are the page templates handlers render by name.
var Views = []string{
	"home.html",
	"error.html",
	"auth/login.html",
	"auth/register.html",
	"post/show.html",
	"post/create.html",
	"post/category.html",
}

var funcMap = template.FuncMap{
	"excerpt": utils.Excerpt,
}

// LoadTemplates builds one template set per view: the base layout, every
// include and the view itself.
func LoadTemplates() (multitemplate.Renderer, error) {
	r := multitemplate.NewRenderer()

	layouts, err := fs.Glob(templatesFS, "templates/layouts/*.html")
	if err != nil {
		return nil, err
	}
	includes, err := fs.Glob(templatesFS, "templates/includes/*.html")
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no layouts found")
	}

	for _, view := range Views {
		files := make([]string, 0, len(layouts)+len(includes)+1)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, "templates/views/"+view)

		tmpl, err := template.New(path.Base(layouts[0])).Funcs(funcMap).ParseFS(templatesFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", view, err)
		}
		r.Add(view, tmpl)
	}
	return r, nil
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
