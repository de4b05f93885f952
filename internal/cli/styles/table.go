package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NewReportTable creates a themed, borderless table for command output.
func NewReportTable(theme *Theme, headers ...string) *table.Table {
	header := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		PaddingRight(2)
	cell := lipgloss.NewStyle().
		Foreground(theme.Text).
		PaddingRight(2)

	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
