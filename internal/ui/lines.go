// Package ui holds the on-screen panels drawn next to an animated sim.
package ui

import (
	"fmt"
	"strings"

	"aoc-grid/internal/core"
)

// Line is one row of panel text.
type Line struct {
	Text   string
	Header bool
}

// Lines lays out a parameter snapshot as panel rows: a title, then each group
// name followed by its "label: value" rows.
func Lines(title string, snapshot core.ParameterSnapshot) []Line {
	if title == "" {
		title = "Parameters"
	}
	out := []Line{{Text: strings.ToUpper(title[:1]) + title[1:], Header: true}}
	params := 0
	for _, g := range snapshot.Groups {
		if len(g.Params) == 0 {
			continue
		}
		if g.Name != "" {
			out = append(out, Line{Text: g.Name, Header: true})
		}
		for _, p := range g.Params {
			out = append(out, Line{Text: fmt.Sprintf("%s: %s", p.Label, p.Value)})
			params++
		}
	}
	if params == 0 {
		out = append(out, Line{Text: "No parameters"})
	}
	return out
}
