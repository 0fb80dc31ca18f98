package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to the templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

var catalogTemplate = template.Must(template.New("catalog").Funcs(funcMap).Parse(catalogTmpl))

// --- Template data types ---

type catalogData struct {
	Package string
	Groups  []groupData
}

type groupData struct {
	Name     string
	Prefix   string
	Messages []messageData
}

type messageData struct {
	GoName  string
	ID      string
	Default string
}

// GenerateCatalog renders the Go source for a catalog.
func GenerateCatalog(c *RawCatalog) (string, error) {
	data := catalogData{Package: c.Package}
	for _, g := range c.Groups {
		gd := groupData{Name: g.Name, Prefix: g.Prefix}
		for _, m := range g.Messages {
			gd.Messages = append(gd.Messages, messageData{
				GoName:  goName(g.Name, m.Key),
				ID:      messageID(g.Prefix, m.Key),
				Default: m.Default,
			})
		}
		data.Groups = append(data.Groups, gd)
	}

	var b strings.Builder
	if err := catalogTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering catalog: %w", err)
	}
	return b.String(), nil
}

// --- Template definitions ---

const catalogTmpl = `// Code generated by gwconsole-msggen. DO NOT EDIT.

package {{.Package}}
{{range .Groups}}
// {{.Name}} messages ({{.Prefix}}).
var (
{{- range .Messages}}
	{{.GoName}} = Descriptor{ID: {{quote .ID}}, Default: {{quote .Default}}}
{{- end}}
)
{{end}}
// all lists every generated descriptor in catalog order.
var all = []Descriptor{
{{- range .Groups}}{{range .Messages}}
	{{.GoName}},
{{- end}}{{end}}
}
`
