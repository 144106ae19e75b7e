// Package ledgercsv reads transactions from delimited text files.
package ledgercsv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	enc "github.com/MrJamesThe3rd/pocketbook/internal/encoding"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

var dateLayouts = []string{calendar.Layout, "02-01-2006", "02/01/2006"}

// Parser reads semicolon or comma separated files. Rows with a header are
// matched against the known profiles; files without one are read as
// date;amount;category;note.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return parseRows(&positional, positionalCols(), rows, 0)
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// sniffDelimiter picks ';' or ',' by counting them in the first line.
func sniffDelimiter(br *bufio.Reader) rune {
	line, _ := br.Peek(br.Size())
	if i := strings.IndexByte(string(line), '\n'); i >= 0 {
		line = line[:i]
	}

	if strings.Count(string(line), ",") > strings.Count(string(line), ";") {
		return ','
	}

	return ';'
}

type colIndex map[string]int

func positionalCols() colIndex {
	return colIndex{"0": 0, "1": 1, "2": 2, "3": 3}
}

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(p *Profile, cols colIndex, rows [][]string, firstRow int) ([]transaction.CreateParams, error) {
	var txs []transaction.CreateParams

	for i, row := range rows {
		rowNum := firstRow + i + 1

		date, ok := parseDate(cell(row, cols, p.DateCol))
		if !ok {
			continue
		}

		amount, typ, err := parseAmount(p, cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if amount == 0 {
			continue
		}

		txs = append(txs, transaction.CreateParams{
			Type:     typ,
			Amount:   amount,
			Note:     cell(row, cols, p.NoteCol),
			Category: strings.ToLower(cell(row, cols, p.CategoryCol)),
			Date:     date,
		})
	}

	return txs, nil
}

// parseDate returns false for blank or unparseable cells, so headers,
// footers and notes between blocks are skipped.
func parseDate(s string) (calendar.Date, bool) {
	if s == "" {
		return calendar.Date{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return calendar.From(t), true
		}
	}

	return calendar.Date{}, false
}

func parseAmount(p *Profile, cols colIndex, row []string) (float64, transaction.Type, error) {
	switch p.AmountMode {
	case amountSplit:
		if s := cell(row, cols, p.DebitCol); s != "" {
			v, err := money.ParseSigned(s)
			if err != nil {
				return 0, "", fmt.Errorf("debit %q: %w", s, err)
			}

			if v != 0 {
				return abs(v), transaction.TypeExpense, nil
			}
		}

		if s := cell(row, cols, p.CreditCol); s != "" {
			v, err := money.ParseSigned(s)
			if err != nil {
				return 0, "", fmt.Errorf("credit %q: %w", s, err)
			}

			return abs(v), transaction.TypeIncome, nil
		}

		return 0, "", nil
	default:
		s := cell(row, cols, p.AmountCol)

		v, err := money.ParseSigned(s)
		if err != nil {
			return 0, "", fmt.Errorf("amount %q: %w", s, err)
		}

		if v < 0 {
			return -v, transaction.TypeExpense, nil
		}

		return v, transaction.TypeIncome, nil
	}
}

func cell(row []string, cols colIndex, name string) string {
	if name == "" {
		return ""
	}

	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
