// SPDX-License-Identifier: MIT

// Package ux renders the rgex terminal summaries.
package ux

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/rgex/export"
	"github.com/katalvlaran/rgex/groupdb"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorWarn   = lipgloss.Color("#F4D03F")
	colorError  = lipgloss.Color("#E74C3C")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// ExportSummary renders the outcome of one export.
func ExportSummary(modelName, path string, s export.Stats) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("rgex export: "+modelName) + "\n")

	t := newTable("Category", "Running", "Terms", "Indexed", "Open")
	for _, c := range s.Categories {
		t.Row(c.Category.Title(), strconv.Itoa(c.Groups), strconv.Itoa(c.Terms), strconv.Itoa(c.Indexed), strconv.Itoa(c.Open))
	}
	sb.WriteString(t.Render() + "\n")

	sb.WriteString(mutedStyle.Render(fmt.Sprintf("%d terms, %d indexed", s.Terms, s.Indexed)) + "\n")
	if s.SkippedMappings > 0 {
		sb.WriteString(warnStyle.Render(fmt.Sprintf("%d mapping entries skipped", s.SkippedMappings)) + "\n")
	}
	if path != "" {
		sb.WriteString("written to " + path + "\n")
	}

	return sb.String()
}

// GroupSummary renders a gauge group and its cached representations.
func GroupSummary(g *groupdb.Group) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s: %s", g.Name, g.Latex)) + "\n")
	if g.Abelian {
		sb.WriteString(mutedStyle.Render("abelian, dimension 1") + "\n")
		return sb.String()
	}
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("dimension %d, rank %d", g.Dim, g.Rank)) + "\n")

	t := newTable("Labels", "Name", "Dim", "Reality", "Index")
	for _, r := range g.Reps() {
		t.Row("("+r.Labels.String()+")", r.Name, strconv.Itoa(r.Dim), r.Reality.String(), r.DynkinIndex.String())
	}
	sb.WriteString(t.Render() + "\n")

	return sb.String()
}

// Error renders a fatal error line.
func Error(err error) string {
	return errorStyle.Render("error: ") + err.Error()
}
