package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/reconcile"
)

//go:embed *.md
var templates embed.FS

// Markdown renders a report as a markdown document.
func Markdown(r *reconcile.Report, opts Options) string {
	return RenderComparison(NewComparison(r, opts))
}

// RenderComparison renders the Comparison struct to a markdown string.
func RenderComparison(c *Comparison) string {
	partials := map[string]string{
		"comparison_title":   "comparison_title.md",
		"comparison_summary": "comparison_summary.md",
		"comparison_rows":    "comparison_rows.md",
		// An empty details list renders nothing.
		"comparison_details": "comparison_details.md",
	}
	return renderTemplate("comparison", "comparison.md", partials, c)
}

// SummaryMarkdown renders the title and the summary of a report.
func SummaryMarkdown(r *reconcile.Report, opts Options) string {
	return RenderSummary(NewComparison(r, opts))
}

// RenderSummary renders the title and summary of the Comparison struct to a markdown string.
func RenderSummary(c *Comparison) string {
	partials := map[string]string{
		"comparison_title":   "comparison_title.md",
		"comparison_summary": "comparison_summary.md",
	}
	return renderTemplate("summary", "summary.md", partials, c)
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
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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
