package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/pocketbook/internal/aggregate"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

type Kind string

const (
	KindMonthly  Kind = "monthly"
	KindCategory Kind = "category"
	KindYearly   Kind = "yearly"
)

// Kinds lists the report kinds in selector order.
var Kinds = []Kind{KindMonthly, KindCategory, KindYearly}

// ParseKind reads a report kind. An empty string is the monthly report.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindMonthly:
		return KindMonthly, nil
	case KindCategory, KindYearly:
		return Kind(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Next cycles through Kinds.
func (k Kind) Next() Kind {
	for i, v := range Kinds {
		if v == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}

	return KindMonthly
}

var (
	ErrInvalidKind    = errors.New("invalid report type")
	ErrNoTransactions = errors.New("no transactions recorded")
	ErrNoData         = errors.New("no transactions in the selected period")
	ErrReportFailed   = errors.New("report generation failed")
)

// Request selects a report. Month is zero for category reports over every
// month; Year is zero for yearly reports over every year.
type Request struct {
	Kind  Kind
	Year  int
	Month time.Month
}

type Report struct {
	Kind    Kind                      `json:"kind"`
	Title   string                    `json:"title"`
	Totals  aggregate.Totals          `json:"totals"`
	Chart   render.Chart              `json:"chart"`
	Rows    []render.Row              `json:"rows"`
	Buckets []aggregate.Bucket        `json:"buckets,omitempty"`
	Groups  []aggregate.CategoryTotal `json:"categories,omitempty"`
}
