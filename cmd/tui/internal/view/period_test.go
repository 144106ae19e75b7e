package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/pocketbook/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

func TestPeriod_Navigation(t *testing.T) {
	tests := []struct {
		name string
		got  view.Period
		want view.Period
	}{
		{"NextMonth", view.Period{Year: 2026, Month: time.March}.NextMonth(), view.Period{Year: 2026, Month: time.April}},
		{"NextMonthWraps", view.Period{Year: 2026, Month: time.December}.NextMonth(), view.Period{Year: 2027, Month: time.January}},
		{"PrevMonthWraps", view.Period{Year: 2026, Month: time.January}.PrevMonth(), view.Period{Year: 2025, Month: time.December}},
		{"NextYear", view.Period{Year: 2026, Month: time.May}.NextYear(), view.Period{Year: 2027, Month: time.May}},
		{"PrevYear", view.Period{Year: 2026, Month: time.May}.PrevYear(), view.Period{Year: 2025, Month: time.May}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestPeriod_Label(t *testing.T) {
	p := view.PeriodOf(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "October 2026", p.Label(render.NewLocalizer("en", "")))
	assert.Equal(t, "أكتوبر 2026", p.Label(render.NewLocalizer("ar-EG", "")))
}
