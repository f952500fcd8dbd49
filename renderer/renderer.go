// Package renderer turns session data into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/primo/cartera"
)

//go:embed templates/*.md
var templates embed.FS

// Dashboard is the render model of the session overview: the current
// valuation, the open position records and the value history.
type Dashboard struct {
	Valuation *cartera.Valuation
	Positions []cartera.Movement
	History   []cartera.Point
}

// RenderDashboard renders the full session overview to markdown.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title":     "templates/dashboard_title.md",
		"dashboard_summary":   "templates/dashboard_summary.md",
		"dashboard_assets":    "templates/dashboard_assets.md",
		"dashboard_positions": "templates/dashboard_positions.md",
		"dashboard_history":   "templates/dashboard_history.md",
	}
	return renderTemplate("dashboard", "templates/dashboard.md", partials, d)
}

// RenderMovements renders the movement journal, most recent first.
func RenderMovements(movements []cartera.Movement) string {
	return renderTemplate("movements", "templates/movements.md", nil, movements)
}

// renderTemplate renders a main template that depends on several
// partials, each aliased under its own name.
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
