package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/aggregate"
	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

type debtState int

const (
	debtStateList debtState = iota
	debtStateSearch
	debtStateForm
	debtStateConfirm
)

type debtFields struct {
	Name    string
	Amount  string
	Type    debt.Type
	Date    string
	Note    string
	Confirm bool
}

var debtStatusTabs = []*debt.Status{nil, new(debt.StatusPending), new(debt.StatusPaid)}

type DebtsModel struct {
	CommonModel
	debtService *debt.Service
	locale      *render.Localizer

	state  debtState
	list   list.Model
	search textinput.Model
	form   *huh.Form
	fields *debtFields

	statusTab int
	deleting  uuid.UUID
	owed      float64
	owes      float64

	loading bool
	empty   bool
	status  string
}

func NewDebtsModel(svc *debt.Service, locale *render.Localizer) DebtsModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 64

	return DebtsModel{
		debtService: svc,
		locale:      locale,
		list:        newRecordList(nil),
		search:      search,
		loading:     true,
	}
}

func (m DebtsModel) Title() string { return "Debts" }

func (m DebtsModel) ShortHelp() string {
	switch m.state {
	case debtStateSearch:
		return "Enter: apply | Esc: clear"
	case debtStateForm, debtStateConfirm:
		return "Esc: cancel"
	}

	return "Esc: back | n: new | /: search | s: status | space: paid/pending | x: delete"
}

func (m DebtsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DebtsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debtsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.list.SetItems(toListItems(msg.items))
		m.empty = len(msg.items) == 0
		m.owed, m.owes = msg.owed, msg.owes

		return m, nil

	case debtSavedMsg:
		m.state = debtStateList
		m.form = nil

		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.status = m.locale.Text(render.TextSaved)

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-12)
		return m, nil
	}

	switch m.state {
	case debtStateSearch:
		return m.updateSearch(msg)
	case debtStateForm:
		return m.updateForm(msg)
	case debtStateConfirm:
		return m.updateConfirm(msg)
	}

	return m.updateList(msg)
}

func (m DebtsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			return m.startForm()
		case "/":
			m.state = debtStateSearch
			return m, m.search.Focus()
		case "s":
			m.statusTab = (m.statusTab + 1) % len(debtStatusTabs)
			return m, m.loadCmd()
		case " ":
			if item, ok := selectedItem(m.list); ok {
				return m, m.toggleCmd(item.ID)
			}

			return m, nil
		case "x":
			return m.startConfirm()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m DebtsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.search.SetValue("")
			m.search.Blur()
			m.state = debtStateList

			return m, m.loadCmd()
		case tea.KeyEnter:
			m.search.Blur()
			m.state = debtStateList

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

func (m DebtsModel) startForm() (tea.Model, tea.Cmd) {
	m.fields = &debtFields{
		Type: debt.TypeOwed,
		Date: calendar.Today().String(),
	}

	f := m.fields
	l := m.locale

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title(l.Text(render.TextAmountHeading)).
				Placeholder("0.00").
				Value(&f.Amount).
				Validate(validateAmount),

			huh.NewSelect[debt.Type]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption(l.Text(render.TextOwed), debt.TypeOwed),
					huh.NewOption(l.Text(render.TextDebt), debt.TypeDebt),
				).
				Value(&f.Type),

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

	m.state = debtStateForm
	m.status = ""

	return m, m.form.Init()
}

func (m DebtsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = debtStateList
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = debtStateList
		m.form = nil

		return m, m.createCmd(*m.fields)
	case huh.StateAborted:
		m.state = debtStateList
		m.form = nil

		return m, nil
	}

	return m, cmd
}

func (m DebtsModel) startConfirm() (tea.Model, tea.Cmd) {
	item, ok := selectedItem(m.list)
	if !ok {
		return m, nil
	}

	m.deleting = item.ID
	m.fields = &debtFields{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(m.locale.Text(render.TextDeleteConfirm)).
				Description(item.Title + "  " + item.Amount).
				Value(&m.fields.Confirm),
		),
	).WithWidth(50).WithShowHelp(false)
	m.state = debtStateConfirm

	return m, m.form.Init()
}

func (m DebtsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = debtStateList
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

	m.state = debtStateList
	m.form = nil

	if !m.fields.Confirm {
		return m, nil
	}

	return m, m.deleteCmd(m.deleting)
}

func (m DebtsModel) View() string {
	if m.state == debtStateForm || m.state == debtStateConfirm {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	l := m.locale
	statusLabels := []string{"All", l.Text(render.TextPending), l.Text(render.TextPaid)}

	totals := fmt.Sprintf("%s: %s   %s: %s",
		l.Text(render.TextOwed), styleFor(render.StyleIncome).Render(l.Amount(m.owed)),
		l.Text(render.TextDebt), styleFor(render.StyleExpense).Render(l.Amount(m.owes)),
	)

	header := fmt.Sprintf("[s] Status: %s", activeStyle(statusLabels[m.statusTab]))

	parts := []string{totals, lipgloss.NewStyle().PaddingBottom(1).Render(header)}

	if m.state == debtStateSearch || m.search.Value() != "" {
		parts = append(parts, m.search.View())
	}

	if m.status != "" {
		parts = append(parts, faint(m.status))
	}

	switch {
	case m.loading:
		parts = append(parts, faint("..."))
	case m.empty:
		parts = append(parts, faint(l.Text(render.TextNoDebts)))
	default:
		parts = append(parts, m.list.View())
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Messages

type debtsLoadedMsg struct {
	items []render.Item
	owed  float64
	owes  float64
	err   error
}

type debtSavedMsg struct {
	err error
}

func (m DebtsModel) loadCmd() tea.Cmd {
	f := debt.ListFilter{
		Search: strings.TrimSpace(m.search.Value()),
		Status: debtStatusTabs[m.statusTab],
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		all, err := m.debtService.List(ctx, debt.ListFilter{})
		if err != nil {
			return debtsLoadedMsg{err: err}
		}

		shown, err := m.debtService.List(ctx, f)
		if err != nil {
			return debtsLoadedMsg{err: err}
		}

		return debtsLoadedMsg{
			items: m.locale.DebtItems(shown),
			owed:  aggregate.OwedTotal(all),
			owes:  aggregate.DebtTotal(all),
		}
	}
}

func (m DebtsModel) createCmd(f debtFields) tea.Cmd {
	return func() tea.Msg {
		amount, err := money.Parse(f.Amount)
		if err != nil {
			return debtSavedMsg{err: err}
		}

		date, err := calendar.Parse(f.Date)
		if err != nil {
			return debtSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err = m.debtService.Create(ctx, debt.CreateParams{
			Name:   f.Name,
			Amount: amount,
			Type:   f.Type,
			Note:   strings.TrimSpace(f.Note),
			Date:   date,
		})

		return debtSavedMsg{err: err}
	}
}

func (m DebtsModel) toggleCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.debtService.ToggleStatus(ctx, id)

		return debtSavedMsg{err: err}
	}
}

func (m DebtsModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return debtSavedMsg{err: m.debtService.Delete(ctx, id)}
	}
}
