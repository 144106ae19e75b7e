package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/importer"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateParsing
	importStatePreview
	importStateResult
)

type ImportModel struct {
	CommonModel
	txService     *transaction.Service
	importService *importer.Service
	locale        *render.Localizer

	state      importState
	filePicker filepicker.Model
	path       string

	params    []transaction.CreateParams
	suggested int
	preview   list.Model

	status string
	err    error
}

func NewImportModel(txSvc *transaction.Service, impSvc *importer.Service, locale *render.Localizer) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		txService:     txSvc,
		importService: impSvc,
		locale:        locale,
		filePicker:    fp,
		preview:       newRecordList(nil),
	}
}

func (m ImportModel) Title() string { return "Import CSV" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStatePreview {
		return "Enter: import all | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStatePreview {
			return m.updatePreview(msg)
		}

	case parsedMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		if len(msg.params) == 0 {
			m.state = importStateResult
			m.err = importer.ErrNothingToImport
			m.status = importer.ErrNothingToImport.Error()

			return m, nil
		}

		m.params = msg.params
		m.suggested = msg.suggested
		m.preview.SetItems(toListItems(previewItems(m.locale, msg.params)))
		m.state = importStatePreview

		return m, nil

	case importDoneMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = m.locale.Text(render.TextImported, msg.count)

		return m, nil

	case tea.WindowSizeMsg:
		m.preview.SetSize(msg.Width-4, msg.Height-10)
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateParsing
		m.path = path
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStatePreview, importStateResult:
		m.state = importStateFilePick
		m.params = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.state = importStateParsing
		m.status = fmt.Sprintf("Importing %d rows...", len(m.params))

		return m, m.importCmd(m.params)
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select a CSV file to import:\n\n%s", m.filePicker.View()),
		)
	case importStateParsing:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStatePreview:
		header := fmt.Sprintf("%s: %d rows, %d categories suggested",
			m.path, len(m.params), m.suggested)

		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left, activeStyle(header), "", m.preview.View()),
		)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle(m.status) + "\n\n(Esc to go back)")
	}

	return style.Render(styleFor(render.StyleIncome).Render(m.status) + "\n\n(Esc to go back)")
}

// previewItems renders parsed rows with the same list layout as stored ones.
func previewItems(l *render.Localizer, params []transaction.CreateParams) []render.Item {
	txs := make([]*transaction.Transaction, len(params))
	for i, p := range params {
		txs[i] = &transaction.Transaction{
			ID:       uuid.Nil,
			Type:     p.Type,
			Amount:   p.Amount,
			Note:     p.Note,
			Category: p.Category,
			Date:     p.Date,
		}
	}

	return l.TransactionItems(txs)
}

// Messages

type parsedMsg struct {
	params    []transaction.CreateParams
	suggested int
	err       error
}

type importDoneMsg struct {
	count int
	err   error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parsedMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		params, suggested, err := m.importService.Parse(ctx, importer.FormatCSV, f)

		return parsedMsg{params: params, suggested: suggested, err: err}
	}
}

func (m ImportModel) importCmd(params []transaction.CreateParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		txs, err := m.txService.CreateBatch(ctx, params)
		if err != nil {
			return importDoneMsg{err: err}
		}

		return importDoneMsg{count: len(txs)}
	}
}
