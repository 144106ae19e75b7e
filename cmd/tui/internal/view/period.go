package view

import (
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

// Period is the month a screen is looking at.
type Period struct {
	Year  int
	Month time.Month
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) NextMonth() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}

	return Period{Year: p.Year, Month: p.Month + 1}
}

func (p Period) PrevMonth() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}

	return Period{Year: p.Year, Month: p.Month - 1}
}

func (p Period) NextYear() Period {
	return Period{Year: p.Year + 1, Month: p.Month}
}

func (p Period) PrevYear() Period {
	return Period{Year: p.Year - 1, Month: p.Month}
}

// Label renders the month name and year in the active locale.
func (p Period) Label(l *render.Localizer) string {
	return l.MonthName(p.Month) + " " + strconv.Itoa(p.Year)
}
