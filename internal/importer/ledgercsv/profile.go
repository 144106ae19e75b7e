package ledgercsv

type amountMode int

const (
	// amountSigned is one signed column; negative values are expenses.
	amountSigned amountMode = iota
	// amountSplit is a pair of debit and credit columns.
	amountSplit
)

// Profile describes one accepted header layout. Column names are matched
// case-insensitively.
type Profile struct {
	Name        string
	DateCol     string
	NoteCol     string
	CategoryCol string // optional
	AmountMode  amountMode
	AmountCol   string
	DebitCol    string
	CreditCol   string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol}

	switch p.AmountMode {
	case amountSigned:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles are tried in order; split layouts first so a statement with an
// extra "amount" column is not read as a signed one.
var profiles = []Profile{
	{
		Name:        "statement",
		DateCol:     "date",
		NoteCol:     "description",
		CategoryCol: "category",
		AmountMode:  amountSplit,
		DebitCol:    "debit",
		CreditCol:   "credit",
	},
	{
		Name:        "english",
		DateCol:     "date",
		NoteCol:     "note",
		CategoryCol: "category",
		AmountMode:  amountSigned,
		AmountCol:   "amount",
	},
	{
		Name:        "arabic",
		DateCol:     "التاريخ",
		NoteCol:     "ملاحظة",
		CategoryCol: "الفئة",
		AmountMode:  amountSigned,
		AmountCol:   "المبلغ",
	},
}

// positional is used when no header row is found: date;amount;category;note.
var positional = Profile{
	Name:        "positional",
	DateCol:     "0",
	AmountCol:   "1",
	CategoryCol: "2",
	NoteCol:     "3",
	AmountMode:  amountSigned,
}
