package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

var (
	incomeColor  = lipgloss.Color("46")
	expenseColor = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("240")
	accentColor  = lipgloss.Color("205")
)

// styleFor maps a render style token to a terminal style.
func styleFor(s render.Style) lipgloss.Style {
	switch s {
	case render.StyleIncome:
		return lipgloss.NewStyle().Foreground(incomeColor)
	case render.StyleExpense:
		return lipgloss.NewStyle().Foreground(expenseColor)
	case render.StyleMuted:
		return lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)
	}

	return lipgloss.NewStyle()
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(accentColor).Render(s)
}

func errorStyle(s string) string {
	return lipgloss.NewStyle().Foreground(expenseColor).Render(s)
}

func faint(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}
