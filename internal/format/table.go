package format

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders headers + rows as a bordered terminal table. Column widths
// follow content; styling degrades to plain text on non-TTY writers.
func Table(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	head := cell.Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}
