// Package category holds the fixed set of transaction categories and their
// display names.
package category

import (
	"golang.org/x/text/language"
)

// Key identifies a category in stored records.
type Key string

const (
	Salary       Key = "salary"
	Investment   Key = "investment"
	Gift         Key = "gift"
	Food         Key = "food"
	Transport    Key = "transport"
	Bills        Key = "bills"
	Shopping     Key = "shopping"
	OtherIncome  Key = "other-income"
	OtherExpense Key = "other-expense"

	// Other is the sentinel for records stored without a category.
	Other Key = "other"
)

// Income lists the categories offered for income transactions, in form order.
var Income = []Key{Salary, Investment, Gift, OtherIncome}

// Expense lists the categories offered for expense transactions, in form order.
var Expense = []Key{Food, Transport, Bills, Shopping, OtherExpense}

var names = map[string]map[Key]string{
	"ar": {
		Salary:       "راتب",
		Investment:   "استثمار",
		Gift:         "هدية",
		Food:         "طعام",
		Transport:    "مواصلات",
		Bills:        "فواتير",
		Shopping:     "تسوق",
		OtherIncome:  "أخرى (مدخول)",
		OtherExpense: "أخرى (مصروف)",
	},
	"en": {
		Salary:       "Salary",
		Investment:   "Investment",
		Gift:         "Gift",
		Food:         "Food",
		Transport:    "Transport",
		Bills:        "Bills",
		Shopping:     "Shopping",
		OtherIncome:  "Other (income)",
		OtherExpense: "Other (expense)",
	},
}

var general = map[string]string{
	"ar": "عام",
	"en": "General",
}

// Normalize maps an empty key to Other.
func Normalize(key string) Key {
	if key == "" {
		return Other
	}

	return Key(key)
}

// Known reports whether key is one of the fixed categories.
func Known(key Key) bool {
	_, ok := names["en"][key]
	return ok
}

// Name returns the display name of key for the given language. Unknown keys,
// including Other, resolve to the generic label.
func Name(key string, tag language.Tag) string {
	lang := baseOf(tag)

	if n, ok := names[lang][Key(key)]; ok {
		return n
	}

	return general[lang]
}

// Namer returns a Name function bound to tag.
func Namer(tag language.Tag) func(string) string {
	return func(key string) string {
		return Name(key, tag)
	}
}

// AllNames returns every display name of key across supported languages, so
// searches match regardless of the language the user is typing in.
func AllNames(key string) []string {
	out := make([]string, 0, len(names))
	for lang := range names {
		if n, ok := names[lang][Key(key)]; ok {
			out = append(out, n)
			continue
		}

		out = append(out, general[lang])
	}

	return out
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	if _, ok := names[base.String()]; ok {
		return base.String()
	}

	return "en"
}
