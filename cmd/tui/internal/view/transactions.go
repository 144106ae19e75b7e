package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/category"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

type txState int

const (
	txStateList txState = iota
	txStateSearch
	txStateForm
	txStateConfirm
)

// txFields is shared with the huh form, so it lives on the heap and survives
// the model being copied by bubbletea.
type txFields struct {
	Type     transaction.Type
	Amount   string
	Category string
	Date     string
	Note     string
	Confirm  bool
}

var txTypeTabs = []*transaction.Type{nil, new(transaction.TypeIncome), new(transaction.TypeExpense)}

type TransactionsModel struct {
	CommonModel
	txService *transaction.Service
	locale    *render.Localizer

	state  txState
	list   list.Model
	search textinput.Model
	form   *huh.Form
	fields *txFields

	typeTab  int
	period   Period
	byMonth  bool
	deleting uuid.UUID

	loading bool
	empty   bool
	status  string
}

func NewTransactionsModel(txSvc *transaction.Service, locale *render.Localizer) TransactionsModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 64

	return TransactionsModel{
		txService: txSvc,
		locale:    locale,
		list:      newRecordList(nil),
		search:    search,
		period:    PeriodOf(time.Now()),
		loading:   true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case txStateSearch:
		return "Enter: apply | Esc: clear"
	case txStateForm, txStateConfirm:
		return "Esc: cancel"
	}

	if m.byMonth {
		return "Esc: back | n: new | /: search | t: type | m: month off | ←/→: month | x: delete"
	}

	return "Esc: back | n: new | /: search | t: type | m: month | x: delete"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) filter() transaction.ListFilter {
	f := transaction.ListFilter{
		Search: strings.TrimSpace(m.search.Value()),
		Type:   txTypeTabs[m.typeTab],
	}

	if m.byMonth {
		f.Year, f.Month = m.period.Year, int(m.period.Month)
	}

	return f
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case txLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.list.SetItems(toListItems(msg.items))
		m.empty = len(msg.items) == 0

		return m, nil

	case txSavedMsg:
		m.state = txStateList
		m.form = nil

		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.status = m.locale.Text(render.TextSaved)

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil
	}

	switch m.state {
	case txStateSearch:
		return m.updateSearch(msg)
	case txStateForm:
		return m.updateForm(msg)
	case txStateConfirm:
		return m.updateConfirm(msg)
	}

	return m.updateList(msg)
}

func (m TransactionsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			return m.startForm()
		case "/":
			m.state = txStateSearch
			return m, m.search.Focus()
		case "t":
			m.typeTab = (m.typeTab + 1) % len(txTypeTabs)
			return m, m.loadCmd()
		case "m":
			m.byMonth = !m.byMonth
			return m, m.loadCmd()
		case "left":
			if m.byMonth {
				m.period = m.period.PrevMonth()
				return m, m.loadCmd()
			}
		case "right":
			if m.byMonth {
				m.period = m.period.NextMonth()
				return m, m.loadCmd()
			}
		case "x":
			return m.startConfirm()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m TransactionsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.search.SetValue("")
			m.search.Blur()
			m.state = txStateList

			return m, m.loadCmd()
		case tea.KeyEnter:
			m.search.Blur()
			m.state = txStateList

			return m, nil
		}
	}

	before := m.search.Value()

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != before {
		return m, tea.Batch(cmd, m.loadCmd())
	}

	return m, cmd
}

func (m TransactionsModel) startForm() (tea.Model, tea.Cmd) {
	m.fields = &txFields{
		Type: transaction.TypeExpense,
		Date: calendar.Today().String(),
	}

	f := m.fields
	l := m.locale

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[transaction.Type]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption(l.Text(render.TextExpense), transaction.TypeExpense),
					huh.NewOption(l.Text(render.TextIncome), transaction.TypeIncome),
				).
				Value(&f.Type),

			huh.NewInput().
				Key("amount").
				Title(l.Text(render.TextAmountHeading)).
				Placeholder("0.00").
				Value(&f.Amount).
				Validate(validateAmount),

			huh.NewSelect[string]().
				Key("category").
				Title(l.Text(render.TextCategoryHeading)).
				OptionsFunc(func() []huh.Option[string] {
					return categoryOptions(l, f.Type)
				}, &f.Type).
				Value(&f.Category),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder(calendar.Layout).
				Value(&f.Date).
				Validate(validateDate),

			huh.NewInput().
				Key("note").
				Title("Note").
				Value(&f.Note),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = txStateForm
	m.status = ""

	return m, m.form.Init()
}

func categoryOptions(l *render.Localizer, t transaction.Type) []huh.Option[string] {
	keys := category.Expense
	if t == transaction.TypeIncome {
		keys = category.Income
	}

	opts := make([]huh.Option[string], len(keys))
	for i, k := range keys {
		opts[i] = huh.NewOption(l.Category(string(k)), string(k))
	}

	return opts
}

func (m TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = txStateList
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = txStateList
		m.form = nil

		return m, m.createCmd(*m.fields)
	case huh.StateAborted:
		m.state = txStateList
		m.form = nil

		return m, nil
	}

	return m, cmd
}

func (m TransactionsModel) startConfirm() (tea.Model, tea.Cmd) {
	item, ok := selectedItem(m.list)
	if !ok {
		return m, nil
	}

	m.deleting = item.ID
	m.fields = &txFields{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(m.locale.Text(render.TextDeleteConfirm)).
				Description(item.Title + "  " + item.Amount).
				Value(&m.fields.Confirm),
		),
	).WithWidth(50).WithShowHelp(false)
	m.state = txStateConfirm

	return m, m.form.Init()
}

func (m TransactionsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = txStateList
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = txStateList
	m.form = nil

	if !m.fields.Confirm {
		return m, nil
	}

	return m, m.deleteCmd(m.deleting)
}

func (m TransactionsModel) View() string {
	if m.state == txStateForm || m.state == txStateConfirm {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	typeLabels := []string{"All", m.locale.Text(render.TextIncome), m.locale.Text(render.TextExpense)}

	month := "All"
	if m.byMonth {
		month = m.period.Label(m.locale)
	}

	header := fmt.Sprintf("[t] Type: %s | [m] Month: %s", activeStyle(typeLabels[m.typeTab]), activeStyle(month))

	parts := []string{lipgloss.NewStyle().PaddingBottom(1).Render(header)}

	if m.state == txStateSearch || m.search.Value() != "" {
		parts = append(parts, m.search.View())
	}

	if m.status != "" {
		parts = append(parts, faint(m.status))
	}

	switch {
	case m.loading:
		parts = append(parts, faint("..."))
	case m.empty:
		parts = append(parts, faint(m.locale.Text(render.TextNoTransactions)))
	default:
		parts = append(parts, m.list.View())
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Messages

type txLoadedMsg struct {
	items []render.Item
	err   error
}

type txSavedMsg struct {
	err error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	f := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, f)
		if err != nil {
			return txLoadedMsg{err: err}
		}

		return txLoadedMsg{items: m.locale.TransactionItems(txs)}
	}
}

func (m TransactionsModel) createCmd(f txFields) tea.Cmd {
	return func() tea.Msg {
		amount, err := money.Parse(f.Amount)
		if err != nil {
			return txSavedMsg{err: err}
		}

		date, err := calendar.Parse(f.Date)
		if err != nil {
			return txSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err = m.txService.Create(ctx, transaction.CreateParams{
			Type:     f.Type,
			Amount:   amount,
			Note:     strings.TrimSpace(f.Note),
			Category: f.Category,
			Date:     date,
		})

		return txSavedMsg{err: err}
	}
}

func (m TransactionsModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return txSavedMsg{err: m.txService.Delete(ctx, id)}
	}
}
