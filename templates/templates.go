// Package templates holds the embedded HTML views.
package templates

import (
	"embed"
	"html/template"
	"strconv"
	"time"
)

//go:embed html/*.html
var files embed.FS

// Load parses every view. Timestamps are shown in loc; dates are calendar
// values and are printed as stored.
func Load(loc *time.Location) (*template.Template, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02/01/2006")
		},
		"localtime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.In(loc).Format("02/01/2006 15:04")
		},
		"idstr": func(id uint) string {
			return strconv.FormatUint(uint64(id), 10)
		},
	}
	return template.New("").Funcs(funcs).ParseFS(files, "html/*.html")
}
