package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the template directory, templates are addressed by file name.
var templates = func() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}()

// RenderGrowth renders the Growth struct to a markdown string.
func RenderGrowth(g *Growth) string {
	return renderTemplate("growth", "growth.md", nil, g)
}

// RenderFees renders the Fees struct to a markdown string.
func RenderFees(f *Fees) string {
	return renderTemplate("fees", "fees.md", nil, f)
}

// RenderEmergency renders the Emergency struct to a markdown string.
func RenderEmergency(e *Emergency) string {
	return renderTemplate("emergency", "emergency.md", nil, e)
}

// RenderDebt renders the Debt struct to a markdown string.
func RenderDebt(d *Debt) string {
	partials := map[string]string{
		"debt_table":    "debt_table.md",
		"debt_summary":  "debt_summary.md",
		"debt_timeline": "debt_timeline.md",
	}
	return renderTemplate("debt", "debt.md", partials, d)
}

// RenderDebtComparison renders the DebtComparison struct to a markdown string.
func RenderDebtComparison(c *DebtComparison) string {
	partials := map[string]string{
		"debt_table":    "debt_table.md",
		"debt_timeline": "debt_timeline.md",
	}
	return renderTemplate("compare", "compare.md", partials, c)
}

// RenderAllocation renders the Allocation struct to a markdown string.
func RenderAllocation(a *Allocation) string {
	return renderTemplate("allocation", "allocation.md", nil, a)
}

// RenderRoth renders the Roth struct to a markdown string.
func RenderRoth(r *Roth) string {
	return renderTemplate("roth", "roth.md", nil, r)
}

// RenderDCA renders the DCA struct to a markdown string.
func RenderDCA(d *DCA) string {
	return renderTemplate("dca", "dca.md", nil, d)
}

// RenderDrawdowns renders the Drawdowns struct to a markdown string.
func RenderDrawdowns(d *Drawdowns) string {
	return renderTemplate("drawdowns", "drawdowns.md", nil, d)
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
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
