package project

import (
	"io"
	"text/template"
	"time"

	"github.com/pkg/errors"

	"github.com/GoFEDS/GoFEDS/internal/settings"
)

// specDocTemplate renders the plain-text specification document handed to
// the people working the generated data set. Hidden settings stay out of
// the document; anomaly switches are listed in their own section so the
// instructor's copy shows what was planted.
const specDocTemplate = `PROJECT SPECIFICATION: {{.Title}}
Business area: {{.BusinessArea}}
Generated: {{.GeneratedAt}}

{{if .Description}}{{.Description}}

{{end -}}
{{if .Settings}}Project settings:
{{range .Settings}}  {{.Label}}: {{.Summary}}
{{end}}
{{end -}}
{{range .Tables}}Table: {{.Title}}
{{- if .Description}}
  {{.Description}}
{{- end}}
{{- if .Settings}}
  Settings:
{{- range .Settings}}
    {{.Label}}: {{.Summary}}
{{- end}}
{{- end}}
  Fields:
{{- range .Fields}}
    {{.Title}} ({{.FieldType}})
{{- range .Settings}}
      {{.Label}}: {{.Summary}}
{{- end}}
{{- end}}

{{end -}}
{{if .Anomalies}}Planted anomalies:
{{range .Anomalies}}  {{.Label}}: {{.Summary}}
{{end}}
{{- end}}`

type specDocSetting struct {
	Label   string
	Summary string
}

type specDocField struct {
	Title     string
	FieldType FieldType
	Settings  []specDocSetting
}

type specDocTable struct {
	Title       string
	Description string
	Settings    []specDocSetting
	Fields      []specDocField
}

type specDoc struct {
	Title        string
	BusinessArea string
	Description  string
	GeneratedAt  string
	Settings     []specDocSetting
	Tables       []specDocTable
	Anomalies    []specDocSetting
}

// RenderSpec writes the project specification document for an assembled
// tree. Only settings the visibility rules leave visible appear.
func (t *Tree) RenderSpec(w io.Writer) error {
	doc := specDoc{
		Title:        t.Title,
		BusinessArea: t.BusinessAreaTitle,
		Description:  t.Description,
		GeneratedAt:  time.Now().Format("2006/1/2 15:04"),
	}

	doc.Settings, doc.Anomalies = t.splitSettings(t.Settings, doc.Anomalies)

	for _, table := range t.Tables {
		entry := specDocTable{Title: table.Title, Description: table.Description}
		entry.Settings, doc.Anomalies = t.splitSettings(table.Settings, doc.Anomalies)

		for _, field := range table.Fields {
			fieldEntry := specDocField{Title: field.Title, FieldType: field.FieldType}
			fieldEntry.Settings, doc.Anomalies = t.splitSettings(field.Settings, doc.Anomalies)
			entry.Fields = append(entry.Fields, fieldEntry)
		}

		doc.Tables = append(doc.Tables, entry)
	}

	tmpl, err := template.New("specdoc").Parse(specDocTemplate)
	if err != nil {
		return errors.Wrap(err, "parse specification template")
	}

	return errors.Wrap(tmpl.Execute(w, doc), "render specification document")
}

// splitSettings converts visible settings into document entries, routing
// anomaly-group settings into the shared anomalies list.
func (t *Tree) splitSettings(list []settings.Setting, anomalies []specDocSetting) ([]specDocSetting, []specDocSetting) {
	var out []specDocSetting
	for _, s := range list {
		if !t.Registry.Visible(s.MachineName()) {
			continue
		}

		entry := specDocSetting{Label: s.Label(), Summary: s.Summary()}
		if s.Group() == settings.GroupAnomaly {
			anomalies = append(anomalies, entry)
			continue
		}
		out = append(out, entry)
	}
	return out, anomalies
}
