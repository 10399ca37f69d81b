package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"veteranmentors.org/mentors-web/internal/format"
	"veteranmentors.org/mentors-web/internal/i18n"
	"veteranmentors.org/mentors-web/templates"
)

// templatesDir is reparsed on each request in dev mode when it exists.
var templatesDir = "templates"

type views struct {
	bundle  *i18n.Bundle
	devMode bool
	dir     string
	cache   *template.Template
}

func newViews(bundle *i18n.Bundle, devMode bool, dir string) (*views, error) {
	v := &views{bundle: bundle, devMode: devMode, dir: dir}
	// parse once up front so broken templates fail at startup
	t, err := v.parse()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	v.cache = t
	return v, nil
}

func (v *views) source() fs.FS {
	if v.dir != "" {
		return os.DirFS(v.dir)
	}
	return templates.FS
}

func (v *views) parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		"t":        v.bundle.T,
		"now":      time.Now,
		"year":     format.Year,
		"currency": format.Currency,
		// hrefs are validated on content load; this admits tel: links
		"href": func(s string) template.URL { return template.URL(s) },
	}
	fsys := v.source()
	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	return template.New("_root").Funcs(funcMap).ParseFS(fsys, files...)
}

func (v *views) lookup() (*template.Template, error) {
	if v.devMode {
		return v.parse()
	}
	return v.cache, nil
}

// execute renders the named template to w.
func (v *views) execute(w io.Writer, name string, data any) error {
	t, err := v.lookup()
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("template exec error: %w", err)
	}
	return nil
}

// render executes a template into a buffer and writes it with status. In
// dev mode templates are reparsed on each request.
func (v *views) render(w http.ResponseWriter, name string, status int, data any) {
	var buf bytes.Buffer
	if err := v.execute(&buf, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
