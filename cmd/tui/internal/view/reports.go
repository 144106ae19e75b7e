package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocketbook/internal/export"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/report"
)

type ReportsModel struct {
	CommonModel
	reportService *report.Service
	exportService *export.Service
	locale        *render.Localizer

	kind      report.Kind
	period    Period
	allMonths bool

	spinner spinner.Model
	table   table.Model
	report  *report.Report
	loading bool
	message string
	status  string
}

func NewReportsModel(reportSvc *report.Service, exportSvc *export.Service, locale *render.Localizer) ReportsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	columns := []table.Column{
		{Title: locale.Text(render.TextCategoryHeading), Width: 24},
		{Title: locale.Text(render.TextAmountHeading), Width: 18},
		{Title: locale.Text(render.TextShareHeading), Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(6),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(mutedColor).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.Foreground(lipgloss.NoColor{}).Bold(false)
	t.SetStyles(ts)

	return ReportsModel{
		reportService: reportSvc,
		exportService: exportSvc,
		locale:        locale,
		kind:          report.KindMonthly,
		period:        PeriodOf(time.Now()),
		spinner:       s,
		table:         t,
		loading:       true,
	}
}

func (m ReportsModel) Title() string { return "Reports" }

func (m ReportsModel) ShortHelp() string {
	return "Esc: back | t: type | ←/→: month | ↑/↓: year | a: all | e: export"
}

func (m ReportsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.buildCmd(m.request()))
}

// request maps the selection to a report request. The all toggle drops the
// month for category reports and the year for yearly ones.
func (m ReportsModel) request() report.Request {
	req := report.Request{Kind: m.kind, Year: m.period.Year, Month: m.period.Month}

	if !m.allMonths {
		return req
	}

	switch m.kind {
	case report.KindCategory:
		req.Month = 0
	case report.KindYearly:
		req.Year = 0
	}

	return req
}

func (m ReportsModel) rebuild() (tea.Model, tea.Cmd) {
	m.loading = true
	m.status = ""

	return m, tea.Batch(m.spinner.Tick, m.buildCmd(m.request()))
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportBuiltMsg:
		m.loading = false
		m.report, m.message = nil, ""

		switch {
		case errors.Is(msg.err, report.ErrNoTransactions):
			m.message = m.locale.Text(render.TextEmptyLedger)
		case errors.Is(msg.err, report.ErrNoData):
			m.message = m.locale.Text(render.TextNoReportData)
		case msg.err != nil:
			m.message = errorStyle(m.locale.Text(render.TextReportFailed))
		default:
			m.report = msg.report
			m.refreshTable()
		}

		return m, nil

	case exportDoneMsg:
		switch {
		case errors.Is(msg.err, export.ErrNotImplemented):
			m.status = m.locale.Text(render.TextComingSoon)
		case msg.err != nil:
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
		}

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "t":
			m.kind = m.kind.Next()
			return m.rebuild()
		case "left":
			m.period = m.period.PrevMonth()
			return m.rebuild()
		case "right":
			m.period = m.period.NextMonth()
			return m.rebuild()
		case "up":
			m.period = m.period.NextYear()
			return m.rebuild()
		case "down":
			m.period = m.period.PrevYear()
			return m.rebuild()
		case "a":
			m.allMonths = !m.allMonths
			return m.rebuild()
		case "e":
			return m, m.exportCmd(m.request())
		}
	}

	return m, nil
}

func (m *ReportsModel) refreshTable() {
	rows := make([]table.Row, len(m.report.Rows))
	for i, r := range m.report.Rows {
		rows[i] = table.Row{r.Label, r.Amount, r.Percentage}
	}

	m.table.SetRows(rows)
	m.table.SetHeight(len(rows) + 1)
}

func (m ReportsModel) View() string {
	scope := m.period.Label(m.locale)
	if m.allMonths && m.kind != report.KindMonthly {
		scope = "All"
	}

	header := fmt.Sprintf("[t] Report: %s | %s", activeStyle(string(m.kind)), activeStyle(scope))

	parts := []string{lipgloss.NewStyle().PaddingBottom(1).Render(header)}

	switch {
	case m.loading:
		parts = append(parts, m.spinner.View())
	case m.report == nil:
		parts = append(parts, faint(m.message))
	default:
		parts = append(parts,
			BarChart(m.locale, m.report.Chart),
			"",
			lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(mutedColor).
				Render(m.table.View()),
		)
	}

	if m.status != "" {
		parts = append(parts, "", activeStyle(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Messages

type reportBuiltMsg struct {
	report *report.Report
	err    error
}

type exportDoneMsg struct {
	err error
}

func (m ReportsModel) buildCmd(req report.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		r, err := m.reportService.Build(ctx, req)

		return reportBuiltMsg{report: r, err: err}
	}
}

func (m ReportsModel) exportCmd(req report.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.exportService.Export(ctx, req, export.FormatPDF)

		return exportDoneMsg{err: err}
	}
}
