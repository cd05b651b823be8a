// Package view renders groups and commentary for a terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"groupform-server-go/grouping"
	"groupform-server-go/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	leaderStyle = cellStyle.Foreground(lipgloss.Color("214")).Bold(true)
)

// RenderTables draws one bordered table per group, leader row highlighted.
func RenderTables(tables []models.GroupTable) string {
	if len(tables) == 0 {
		return "No students to group.\n"
	}

	var b strings.Builder
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(t.Title))
		b.WriteString("\n")
		b.WriteString(renderTable(t))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTable(t models.GroupTable) string {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = []string{r.Name, grouping.FormatScore(r.Score), string(r.Role)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("name", "score", "role").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(t.Rows) && t.Rows[row].Role == models.RoleLeader:
				return leaderStyle
			default:
				return cellStyle
			}
		}).
		Render()
}

// RenderCommentary formats markdown commentary for a terminal of the given width.
func RenderCommentary(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render commentary: %w", err)
	}
	return out, nil
}
