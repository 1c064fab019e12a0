package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded pages. Names are the file names, e.g. "admin.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"stars": stars,
		"rating2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	out := ""
	for i := 0; i < 5; i++ {
		if i < n {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}
