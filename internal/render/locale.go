// Package render turns aggregated and filtered records into display text,
// list items, chart series and table rows for the active locale.
package render

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/category"
)

var (
	arabicEgypt = language.MustParse("ar-EG")
	supported   = []language.Tag{arabicEgypt, language.English}
	matcher     = language.NewMatcher(supported)
)

var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// Localizer formats values for one locale and currency.
type Localizer struct {
	tag       language.Tag
	arabic    bool
	printer   *message.Printer
	currency  string
	shortCurr string
}

// NewLocalizer resolves locale against the supported languages (Arabic, then
// English). Unknown or unsupported locales use Arabic. An empty currency uses
// the locale default.
func NewLocalizer(locale, currency string) *Localizer {
	tag := resolve(locale)

	l := &Localizer{
		tag:     tag,
		arabic:  tag == arabicEgypt,
		printer: message.NewPrinter(tag, message.Catalog(texts)),
	}

	switch {
	case currency != "":
		l.currency, l.shortCurr = currency, currency
	case l.arabic:
		l.currency, l.shortCurr = "جنيه", "ج"
	default:
		l.currency, l.shortCurr = "EGP", "EGP"
	}

	return l
}

func resolve(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil || requested == language.Und {
		return arabicEgypt
	}

	_, idx, conf := matcher.Match(requested)
	if conf <= language.Low {
		return arabicEgypt
	}

	return supported[idx]
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// RightToLeft reports whether the locale is written right to left.
func (l *Localizer) RightToLeft() bool {
	return l.arabic
}

// Text returns the translation of a catalog key.
func (l *Localizer) Text(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Number formats v with two decimals.
func (l *Localizer) Number(v float64) string {
	return l.printer.Sprintf("%.2f", v)
}

// Amount formats v with two decimals and the currency suffix.
func (l *Localizer) Amount(v float64) string {
	return l.Number(v) + " " + l.currency
}

// Percent formats a percentage with one decimal.
func (l *Localizer) Percent(v float64) string {
	return l.printer.Sprintf("%.1f%%", v)
}

// Tick formats a chart axis value.
func (l *Localizer) Tick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + l.shortCurr
}

// Tooltip formats a chart point for the given series name.
func (l *Localizer) Tooltip(series string, v float64) string {
	return series + ": " + l.Amount(v)
}

func (l *Localizer) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}

	if l.arabic {
		return arabicMonths[m-1]
	}

	return m.String()
}

// Date renders d in the long local form, e.g. "October 15, 2026".
func (l *Localizer) Date(d calendar.Date) string {
	if d.IsZero() {
		return ""
	}

	if l.arabic {
		return fmt.Sprintf("%d %s %d", d.Day(), l.MonthName(d.Month()), d.Year())
	}

	return fmt.Sprintf("%s %d, %d", l.MonthName(d.Month()), d.Day(), d.Year())
}

// Category returns the display name of a category key.
func (l *Localizer) Category(key string) string {
	return category.Name(key, l.tag)
}

func monthOf(period int) time.Month {
	return time.Month(period)
}
