package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

const barWidth = 30

// BarChart draws each non-empty label of c as a pair of horizontal bars, one
// per series, scaled to the largest value in the chart.
func BarChart(l *render.Localizer, c render.Chart) string {
	top := c.Max()
	if top <= 0 {
		return faint(l.Text(render.TextNoData))
	}

	labelWidth := 0
	for _, label := range c.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(c.Title))
	b.WriteString("\n\n")

	for i, label := range c.Labels {
		if rowEmpty(c, i) {
			continue
		}

		for j, s := range c.Series {
			name := ""
			if j == 0 {
				name = label
			}

			var v float64
			if i < len(s.Values) {
				v = s.Values[i]
			}

			n := int(v / top * barWidth)
			if v > 0 && n == 0 {
				n = 1
			}

			fmt.Fprintf(&b, "%s %s %s\n",
				lipgloss.NewStyle().Width(labelWidth).Render(name),
				styleFor(s.Style).Render(strings.Repeat("█", n)),
				faint(l.Tick(v)),
			)
		}
	}

	legend := make([]string, len(c.Series))
	for i, s := range c.Series {
		legend[i] = styleFor(s.Style).Render("█ " + s.Name)
	}

	b.WriteString("\n" + strings.Join(legend, "   "))

	return b.String()
}

func rowEmpty(c render.Chart, i int) bool {
	for _, s := range c.Series {
		if i < len(s.Values) && s.Values[i] != 0 {
			return false
		}
	}

	return true
}
