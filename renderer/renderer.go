// Package renderer renders simulation reports to markdown and wealth
// matrices to PNG charts.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/montecarlo"
)

//go:embed *.md
var templates embed.FS

// SimulationMarkdown renders a simulation report to a markdown string.
func SimulationMarkdown(r *montecarlo.Report) string {
	return renderTemplate("simulationReport", "simulation_report.md", r)
}

// renderTemplate is a generic utility to render a single main template.
func renderTemplate(templateName, mainFile string, data any) string {
	mainContent, err := templates.ReadFile(mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
