package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pocketbook/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/pocketbook/internal/config"
	"github.com/MrJamesThe3rd/pocketbook/internal/dashboard"
	"github.com/MrJamesThe3rd/pocketbook/internal/database"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	debtStore "github.com/MrJamesThe3rd/pocketbook/internal/debt/store"
	"github.com/MrJamesThe3rd/pocketbook/internal/export"
	"github.com/MrJamesThe3rd/pocketbook/internal/importer"
	"github.com/MrJamesThe3rd/pocketbook/internal/ledger"
	"github.com/MrJamesThe3rd/pocketbook/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/pocketbook/internal/matching/store"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/report"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
	txStore "github.com/MrJamesThe3rd/pocketbook/internal/transaction/store"
)

type services struct {
	tx       *transaction.Service
	debt     *debt.Service
	report   *report.Service
	export   *export.Service
	importer *importer.Service
	locale   *render.Localizer
}

type model struct {
	svc     services
	appName string

	currentView View
	width       int
	height      int

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	debtsView        view.DebtsModel
	reportsView      view.ReportsModel
	importView       view.ImportModel
}

type View int

const (
	ViewMenu         View = 0
	ViewTransactions View = 1
	ViewDebts        View = 2
	ViewReports      View = 3
	ViewImport       View = 4
)

func initialModel(cfg *config.Config, svc services, dash *dashboard.Dashboard) model {
	return model{
		svc:           svc,
		appName:       cfg.App.Name,
		currentView:   ViewMenu,
		dashboardView: view.NewDashboardModel(dash, svc.locale),
	}
}

func (m model) Init() tea.Cmd {
	return m.dashboardView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.svc.tx, m.svc.locale)

				return m, tea.Batch(m.transactionsView.Init(), m.resize())
			case "2":
				m.currentView = ViewDebts
				m.debtsView = view.NewDebtsModel(m.svc.debt, m.svc.locale)

				return m, tea.Batch(m.debtsView.Init(), m.resize())
			case "3":
				m.currentView = ViewReports
				m.reportsView = view.NewReportsModel(m.svc.report, m.svc.export, m.svc.locale)

				return m, m.reportsView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.svc.tx, m.svc.importer, m.svc.locale)

				return m, tea.Batch(m.importView.Init(), m.resize())
			}
		}

	case view.BackMsg:
		m.currentView = ViewMenu
		return m, m.dashboardView.Init()
	}

	switch m.currentView {
	case ViewMenu:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewDebts:
		var newModel tea.Model
		newModel, cmd = m.debtsView.Update(msg)
		m.debtsView = newModel.(view.DebtsModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

// resize replays the last window size to a freshly created view.
func (m model) resize() tea.Cmd {
	if m.width == 0 {
		return nil
	}

	w, h := m.width, m.height

	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: w, Height: h}
	}
}

func (m model) View() string {
	var active view.View

	switch m.currentView {
	case ViewMenu:
		menu := lipgloss.NewStyle().Bold(true).Render(m.appName) + "\n\n" +
			"1. Transactions\n" +
			"2. Debts\n" +
			"3. Reports\n" +
			"4. Import CSV\n\n" +
			"q. Quit"

		return lipgloss.NewStyle().Padding(1, 2).Render(
			lipgloss.JoinVertical(lipgloss.Left, menu, "", m.dashboardView.View()),
		)
	case ViewTransactions:
		active = m.transactionsView
	case ViewDebts:
		active = m.debtsView
	case ViewReports:
		active = m.reportsView
	case ViewImport:
		active = m.importView
	}

	if active == nil {
		return "Unknown View"
	}

	title := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(active.Title())
	help := lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(active.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, active.View(), help)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Error("failed to open log file", "path", cfg.Log.File, "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	kv, closeStore, err := database.Open(cfg)
	if err != nil {
		slog.Error("failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	notifier := ledger.NewNotifier()
	locale := render.NewLocalizer(cfg.App.Locale, cfg.App.Currency)

	matchSvc := matching.NewService(matchingStore.New(kv))
	txSvc := transaction.NewService(txStore.New(kv), notifier).WithLearner(matchSvc)
	debtSvc := debt.NewService(debtStore.New(kv), notifier)

	dash := dashboard.New(txSvc, debtSvc, locale, notifier)
	defer dash.Close()

	svc := services{
		tx:       txSvc,
		debt:     debtSvc,
		report:   report.NewService(txSvc, locale),
		export:   export.NewService(),
		importer: importer.NewService(txSvc, matchSvc),
		locale:   locale,
	}

	p := tea.NewProgram(initialModel(cfg, svc, dash), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
