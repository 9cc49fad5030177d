package splot

import (
	"html/template"
	"io"
	"strings"
)

// ----------------------------------------------------------------------------
// Page

// Page collects several charts into one HTML document. The charts are
// embedded inline as SVG, one per div.
type Page struct {
	charts []*Chart
}

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{}
}

// Chart appends a chart to the page.
func (p *Page) Chart(c *Chart) *Page {
	p.charts = append(p.charts, c)
	return p
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset='utf-8'>
<style>
.chart { max-width: 64em; margin: 1em auto; }
</style>
</head>
<body>
{{- range .}}
<div class='chart'>
{{.}}</div>
{{- end}}
</body>
</html>
`))

// WriteHTML renders the page to w.
func (p *Page) WriteHTML(w io.Writer) error {
	rendered := make([]template.HTML, len(p.charts))
	for i, c := range p.charts {
		rendered[i] = template.HTML(c.String())
	}
	return pageTmpl.Execute(w, rendered)
}

// String renders the page as an HTML document.
func (p *Page) String() string {
	var b strings.Builder
	p.WriteHTML(&b)
	return b.String()
}
