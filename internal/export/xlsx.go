package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// numFmtAmount is the built-in "#,##0.00" format.
const numFmtAmount = 4

// WriteXLSX writes a workbook with one sheet per tab.
func WriteXLSX(w io.Writer, report *domain.FinancialReportData, company string) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: numFmtAmount})
	if err != nil {
		return err
	}

	for i, tab := range Tabs {
		table, err := BuildTable(report, tab)
		if err != nil {
			return err
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table.Sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(table.Sheet); err != nil {
			return err
		}
		if err := writeSheet(f, table, company, bold, amount); err != nil {
			return fmt.Errorf("sheet %s: %w", table.Sheet, err)
		}
	}

	return f.Write(w)
}

func writeSheet(f *excelize.File, t Table, company string, bold, amount int) error {
	sheet := t.Sheet
	set := func(col, row int, value any, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
		if style != 0 {
			return f.SetCellStyle(sheet, cell, cell, style)
		}
		return nil
	}

	if err := set(1, 1, t.Title, bold); err != nil {
		return err
	}
	if err := set(2, 1, company, 0); err != nil {
		return err
	}
	for c, h := range t.Header {
		if err := set(c+1, 2, h, bold); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		rowNo := r + 3
		col := 1
		for _, cell := range row.Cells {
			if err := set(col, rowNo, cell, 0); err != nil {
				return err
			}
			col++
		}
		for _, a := range row.Amounts {
			if err := set(col, rowNo, a.InexactFloat64(), amount); err != nil {
				return err
			}
			col++
		}
	}

	return f.SetColWidth(sheet, "A", "D", 24)
}
