package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rogersnm/todomd/internal/model"
)

var (
	spaceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	indexStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	urgentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func PriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityUrgent:
		return urgentStyle
	case model.PriorityHigh:
		return highStyle
	case model.PriorityLow:
		return lowStyle
	default:
		return pendingStyle
	}
}

// RenderTodoLine renders one todo for listing output, keeping the todo's
// original index so toggle/delete against the displayed number stay valid.
func RenderTodoLine(index int, item model.Item) string {
	checkbox := "[ ]"
	style := pendingStyle
	if item.Done {
		checkbox = "[x]"
		style = doneStyle
	}
	return fmt.Sprintf("  %s %s %s %s",
		indexStyle.Render(fmt.Sprintf("%d:", index)),
		checkbox,
		style.Render(item.Text),
		PriorityStyle(item.Priority).Render(item.Priority.Tag()),
	)
}

// RenderSpaceHeader renders the banner above a space's todos.
func RenderSpaceHeader(name string) string {
	return spaceStyle.Render("=== " + name + " ===")
}

// RenderSpaceTable renders the per-space completed/total summary.
func RenderSpaceTable(names []string, done, total []int) string {
	if len(names) == 0 {
		return "No spaces found."
	}
	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{name, fmt.Sprintf("%d/%d", done[i], total[i])}
	}
	t := table.New().
		Headers("Space", "Completed").
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}

// RenderPretty renders the raw todo file through glamour for `show --pretty`.
func RenderPretty(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimLeft(out, "\n"), nil
}
