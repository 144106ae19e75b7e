package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MrJamesThe3rd/pocketbook/internal/category"
	"github.com/MrJamesThe3rd/pocketbook/internal/importer/ledgercsv"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

var (
	ErrNothingToImport = errors.New("no transactions found in file")
	ErrInvalidFile     = errors.New("invalid import file")
	ErrUnknownFormat   = errors.New("unknown import format")
)

// Suggester proposes a category for a note.
type Suggester interface {
	Suggest(ctx context.Context, note string) (string, error)
}

// Creator stores a batch of new transactions.
type Creator interface {
	CreateBatch(ctx context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error)
}

type Result struct {
	Imported     int                        `json:"imported"`
	Suggested    int                        `json:"suggested"`
	Transactions []*transaction.Transaction `json:"transactions"`
}

type Service struct {
	importers map[Format]Importer
	suggester Suggester
	creator   Creator
}

func NewService(creator Creator, suggester Suggester) *Service {
	return &Service{
		importers: map[Format]Importer{
			FormatCSV: ledgercsv.NewParser(),
		},
		suggester: suggester,
		creator:   creator,
	}
}

// Parse reads r in the given format without storing anything. Rows without a
// category get a learned suggestion, or the generic other category for their
// type.
func (s *Service) Parse(ctx context.Context, format Format, r io.Reader) ([]transaction.CreateParams, int, error) {
	if format == "" {
		format = FormatCSV
	}

	imp, ok := s.importers[format]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	params, err := imp.Parse(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	suggested := 0

	for i := range params {
		if params[i].Category != "" {
			continue
		}

		if s.suggester != nil && params[i].Note != "" {
			cat, err := s.suggester.Suggest(ctx, params[i].Note)
			if err != nil {
				slog.Warn("category suggestion failed", "note", params[i].Note, "error", err)
			}

			if cat != "" {
				params[i].Category = cat
				suggested++

				continue
			}
		}

		params[i].Category = string(fallbackCategory(params[i].Type))
	}

	return params, suggested, nil
}

// Import parses r and stores every row in a single batch.
func (s *Service) Import(ctx context.Context, format Format, r io.Reader) (*Result, error) {
	params, suggested, err := s.Parse(ctx, format, r)
	if err != nil {
		return nil, err
	}

	if len(params) == 0 {
		return nil, ErrNothingToImport
	}

	txs, err := s.creator.CreateBatch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("storing imported transactions: %w", err)
	}

	slog.InfoContext(ctx, "imported transactions", "count", len(txs), "suggested", suggested)

	return &Result{Imported: len(txs), Suggested: suggested, Transactions: txs}, nil
}

func fallbackCategory(t transaction.Type) category.Key {
	if t == transaction.TypeIncome {
		return category.OtherIncome
	}

	return category.OtherExpense
}
