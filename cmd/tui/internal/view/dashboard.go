package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocketbook/internal/dashboard"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

// DashboardModel shows the running totals and this year's monthly chart.
type DashboardModel struct {
	CommonModel
	dash   *dashboard.Dashboard
	locale *render.Localizer

	overview *dashboard.Overview
	loading  bool
	err      error
}

func NewDashboardModel(dash *dashboard.Dashboard, locale *render.Localizer) DashboardModel {
	return DashboardModel{dash: dash, locale: locale, loading: true}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		m.loading = false
		m.overview, m.err = msg.overview, msg.err

		return m, nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading && m.overview == nil {
		return faint("...")
	}

	if m.err != nil {
		return errorStyle(fmt.Sprintf("Error: %v", m.err))
	}

	l := m.locale
	s := m.overview.Summary

	card := func(title, value string, style lipgloss.Style) string {
		return lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Render(faint(title) + "\n" + style.Bold(true).Render(value))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card(l.Text(render.TextIncome), s.Income, styleFor(render.StyleIncome)),
		card(l.Text(render.TextExpense), s.Expense, styleFor(render.StyleExpense)),
		card(l.Text(render.TextBalance), s.Balance, styleFor(s.BalanceStyle)),
		card(l.Text(render.TextOwed), s.Owed, lipgloss.NewStyle().Foreground(accentColor)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", BarChart(l, m.overview.Chart))
}

type overviewMsg struct {
	overview *dashboard.Overview
	err      error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		o, err := m.dash.Overview(ctx)

		return overviewMsg{overview: o, err: err}
	}
}
