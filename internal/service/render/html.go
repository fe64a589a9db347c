package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"TradingHours/internal/domain/models"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

// Renderer turns a Report into its text and HTML forms. It is stateless after New.
type Renderer struct {
	html *template.Template
}

func New() *Renderer {
	return &Renderer{
		html: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// HTML renders the email body.
func (r *Renderer) HTML(report *models.Report) (string, error) {
	var buf bytes.Buffer
	if err := r.html.Execute(&buf, newView(report)); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
