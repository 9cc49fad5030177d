package splot

import (
	"strings"
	"testing"
)

func TestPageHTML(t *testing.T) {
	p := NewPage().Chart(buildChart()).Chart(buildChart())
	out := p.String()

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("page does not start with a doctype")
	}
	if got := strings.Count(out, "<svg"); got != 2 {
		t.Errorf("page embeds %d svg elements, want 2", got)
	}
	if got := strings.Count(out, "<div class='chart'>"); got != 2 {
		t.Errorf("page has %d chart divs, want 2", got)
	}
	// The SVG must be inlined raw, not entity-escaped.
	if strings.Contains(out, "&lt;svg") {
		t.Error("embedded svg was HTML-escaped")
	}
}
