package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/finmatrix/internal/core/domain"
)

// WriteCSV writes one tab: a title line naming the company, the header, then
// one record per row. Amounts are written exactly, without grouping.
func WriteCSV(w io.Writer, report *domain.FinancialReportData, tab Tab, company string) error {
	table, err := BuildTable(report, tab)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{table.Title, company}); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range table.Rows {
		rec := make([]string, 0, len(row.Cells)+len(row.Amounts))
		rec = append(rec, row.Cells...)
		for _, a := range row.Amounts {
			rec = append(rec, a.String())
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
