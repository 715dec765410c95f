// Package render draws catalog tables and report sections for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mdelacruz/gobraze/internal/catalog"
)

const ruleWidth = 63

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Table renders a catalog table with borders and a bold header row.
func Table(tbl catalog.Table) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(tbl.Columns...).
		Rows(tbl.Rows...)
	return tbl.Title + "\n" + strings.Repeat("─", ruleWidth) + "\n" + t.String()
}

// Heading renders a top-level report heading between double rules.
func Heading(title string) string {
	rule := strings.Repeat("═", ruleWidth)
	return rule + "\n     " + title + "\n" + rule
}
