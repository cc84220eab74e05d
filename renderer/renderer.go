package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/savings"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templateFiles embed.FS

var templates, _ = fs.Sub(templateFiles, "templates")

// Preview is what the preview templates are executed with.
type Preview struct {
	Entry         savings.Entry
	First         bool            // the expense was entered, not derived
	PreviousTotal decimal.Decimal // used to derive the expense
}

// PreviewMarkdown renders the values an entry would be admitted with.
func PreviewMarkdown(p *Preview) string {
	partials := map[string]string{
		"preview_title":  "preview_title.md",
		"preview_values": "preview_values.md",
	}
	if p.First {
		partials["preview_expense"] = "preview_expense_entered.md"
	} else {
		partials["preview_expense"] = "preview_expense_derived.md"
	}
	return renderTemplate("preview", "preview.md", partials, p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
