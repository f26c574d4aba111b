// Package static renders non-interactive terminal output such as the
// doctor report table.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/create-whop/internal/ui/styles"
)

// RenderTable lays out rows under headers without borders. Column widths
// follow the widest cell; headers use the theme's primary color.
// An empty row set renders as "".
func RenderTable(headers []string, rows [][]string, s styles.Styles) string {
	if len(rows) == 0 {
		return ""
	}

	header := s.Primary.Bold(true).PaddingRight(2)
	cell := lipgloss.NewStyle().PaddingRight(2)

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}
