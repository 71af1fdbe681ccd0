// Package importer reads journal entries from CSV uploads.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Header is the expected first line of an entry upload. It is skipped, never matched.
const Header = "Date,Description,DebitAccount,CreditAccount,Amount"

// DefaultDescription replaces a blank description column.
const DefaultDescription = "Imported Entry"

const (
	dateFormat = "2006-01-02"
	colDate    = 0
	colDesc    = 1
	colDebit   = 2
	colCredit  = 3
	colAmount  = 4
	numFields  = 5
)

// ErrNoEntries is returned when an upload holds no importable row.
var ErrNoEntries = fmt.Errorf("%w: no valid entries found, expected columns %s", apperrors.ErrValidation, Header)

// Row is one importable line of an upload.
type Row struct {
	Line          int // 1-based record number in the upload, header included
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// Result holds the rows of an upload and the number of incomplete lines skipped.
type Result struct {
	Rows    []Row
	Skipped int
}

// ReadEntries parses an upload. Lines missing a date, either account or the
// amount are skipped. A present but malformed date or amount fails the whole
// upload, since a partial import would silently change the books.
func ReadEntries(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	res := &Result{}
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading entries CSV: %w", apperrors.ErrValidation, err)
		}
		line++
		if line == 1 {
			continue
		}

		row, ok, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", apperrors.ErrValidation, line, err)
		}
		if !ok {
			res.Skipped++
			continue
		}
		row.Line = line
		res.Rows = append(res.Rows, row)
	}

	if len(res.Rows) == 0 {
		return nil, ErrNoEntries
	}
	return res, nil
}

func field(rec []string, col int) string {
	if col >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[col])
}

func unmarshalRow(rec []string) (Row, bool, error) {
	date, debit, credit, amount := field(rec, colDate), field(rec, colDebit), field(rec, colCredit), field(rec, colAmount)
	if date == "" || debit == "" || credit == "" || amount == "" {
		return Row{}, false, nil
	}

	d, err := time.Parse(dateFormat, date)
	if err != nil {
		return Row{}, false, fmt.Errorf("parsing date %q: %w", date, err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return Row{}, false, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	if err := accounting.ValidateEntryAmount(amt); err != nil {
		return Row{}, false, err
	}

	desc := field(rec, colDesc)
	if desc == "" {
		desc = DefaultDescription
	}

	return Row{
		Date:          d,
		Description:   desc,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        amt,
	}, true, nil
}
