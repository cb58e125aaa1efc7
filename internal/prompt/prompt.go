// Package prompt composes the AI image-generation prompt copied from the
// gallery for a catalog record.
package prompt

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/zjrosen/stylebook/internal/catalog"
	"github.com/zjrosen/stylebook/internal/log"
)

var funcs = template.FuncMap{
	"join": strings.Join,
}

// The blank after the first sentence of each template is part of the
// prompt text users already paste into generators.
var styleTemplate = template.Must(template.New("style").Funcs(funcs).Parse(
	`Create a webpage in {{.Name}} style. {{.Description}} ` + `

Use these colors: {{join .Colors ", "}}
Typography: {{.Fonts.Display}} for headlines, {{.Fonts.Body}} for body text.

Key elements: {{join .Characteristics ", "}}.

The design should feel: {{.Mood}}`))

var mixedTemplate = template.Must(template.New("mixed").Funcs(funcs).Parse(
	`Create a webpage combining {{.Name}}. ` + `

{{.Description}}

Use these colors: {{join .Colors ", "}}

This hybrid style blends: {{join .ParentStyles " + "}}`))

// ForStyle builds the prompt for a style record.
func ForStyle(s catalog.Style) string {
	return render(styleTemplate, s)
}

// ForMixed builds the prompt for a mixed style record.
func ForMixed(m catalog.MixedStyle) string {
	return render(mixedTemplate, m)
}

// For builds the prompt for whichever record r holds. The empty record
// yields "".
func For(r catalog.Record) string {
	switch {
	case r.Style != nil:
		return ForStyle(*r.Style)
	case r.Mixed != nil:
		return ForMixed(*r.Mixed)
	}
	return ""
}

func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates only reference fields that exist on the record types.
		log.ErrorErr(log.CatUI, "Failed to render prompt", err, "template", tmpl.Name())
		return ""
	}
	return buf.String()
}
