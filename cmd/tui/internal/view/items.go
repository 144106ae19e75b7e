package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

// recordItem wraps a rendered record to implement list.Item.
type recordItem struct {
	render.Item
}

func (i recordItem) FilterValue() string { return i.Item.Title }

func newRecordList(items []render.Item) list.Model {
	l := list.New(toListItems(items), recordDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

func toListItems(items []render.Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = recordItem{Item: it}
	}

	return out
}

// selectedItem returns the record under the cursor.
func selectedItem(l list.Model) (render.Item, bool) {
	it, ok := l.SelectedItem().(recordItem)
	if !ok {
		return render.Item{}, false
	}

	return it.Item, true
}

type recordDelegate struct{}

func (d recordDelegate) Height() int                             { return 2 }
func (d recordDelegate) Spacing() int                            { return 0 }
func (d recordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(recordItem)
	if !ok {
		return
	}

	cursor := "  "
	title := i.Title
	if index == m.Index() {
		cursor = activeStyle("> ")
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}

	amount := styleFor(i.Style).Render(i.Amount)

	status := ""
	if i.Status != "" {
		status = faint("[" + i.Status + "]")
	}

	fmt.Fprintf(w, "%s%s  %s %s\n", cursor, title, amount, status)
	fmt.Fprintf(w, "    %s\n", faint(i.Date+"  "+i.Detail))
}
