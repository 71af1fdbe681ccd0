// Package export renders financial reports as CSV, XLSX and Markdown.
package export

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/SscSPs/finmatrix/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Tab selects one statement of a report.
type Tab string

const (
	TabTrading Tab = "trading"
	TabBalance Tab = "balance"
	TabLedger  Tab = "ledger"
	TabCost    Tab = "cost"
)

// Tabs lists every tab in presentation order.
var Tabs = []Tab{TabTrading, TabBalance, TabLedger, TabCost}

// ParseTab accepts a tab name or one of its short aliases. Empty means TabTrading.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trading", "pnl":
		return TabTrading, nil
	case "balance", "bs":
		return TabBalance, nil
	case "ledger":
		return TabLedger, nil
	case "cost":
		return TabCost, nil
	}
	return "", fmt.Errorf("%w: unknown report tab %q", apperrors.ErrValidation, s)
}

// Row is one line of a table: leading text cells followed by amount cells.
type Row struct {
	Cells   []string
	Amounts []decimal.Decimal
}

// Table is a presentation-neutral view of one statement.
type Table struct {
	Title  string
	Sheet  string // short name, usable as a spreadsheet sheet name
	Header []string
	Rows   []Row
}

func line(amount decimal.Decimal, cells ...string) Row {
	return Row{Cells: cells, Amounts: []decimal.Decimal{amount}}
}

// BuildTable lays out one tab of a report.
func BuildTable(report *domain.FinancialReportData, tab Tab) (Table, error) {
	switch tab {
	case TabTrading:
		return tradingTable(report), nil
	case TabBalance:
		return balanceTable(report), nil
	case TabLedger:
		return ledgerTable(report), nil
	case TabCost:
		return costTable(report), nil
	}
	return Table{}, fmt.Errorf("%w: unknown report tab %q", apperrors.ErrValidation, tab)
}

// Revenue and income are shown unsigned, matching the statement totals.
func tradingTable(r *domain.FinancialReportData) Table {
	t := Table{Title: "Trading & PnL Account", Sheet: "Trading & PnL", Header: []string{"Type", "Account Name", "Amount"}}
	for _, l := range r.Trading.Revenue {
		t.Rows = append(t.Rows, line(l.ClosingBalance.Abs(), "Revenue", l.AccountName))
	}
	for _, l := range r.Trading.COGS {
		t.Rows = append(t.Rows, line(l.ClosingBalance, "COGS", l.AccountName))
	}
	t.Rows = append(t.Rows, line(r.Trading.GrossProfit, "Summary", "Gross Profit"))
	for _, l := range r.PnL.Income {
		t.Rows = append(t.Rows, line(l.ClosingBalance.Abs(), "Income", l.AccountName))
	}
	for _, l := range r.PnL.Expenses {
		t.Rows = append(t.Rows, line(l.ClosingBalance, "Expense", l.AccountName))
	}
	t.Rows = append(t.Rows, line(r.PnL.NetProfit, "Summary", "Net Profit"))
	return t
}

// Liabilities and equity are shown on their credit side.
func balanceTable(r *domain.FinancialReportData) Table {
	t := Table{Title: "Balance Sheet", Sheet: "Balance Sheet", Header: []string{"Type", "Account Name", "Amount"}}
	for _, l := range r.BalanceSheet.Assets {
		t.Rows = append(t.Rows, line(l.ClosingBalance, "Asset", l.AccountName))
	}
	t.Rows = append(t.Rows, line(r.BalanceSheet.TotalAssets, "Summary", "Total Assets"))
	for _, l := range r.BalanceSheet.Liabilities {
		t.Rows = append(t.Rows, line(accounting.NormalBalance(l.ClosingBalance, domain.Liability), "Liability", l.AccountName))
	}
	for _, l := range r.BalanceSheet.Equity {
		t.Rows = append(t.Rows, line(accounting.NormalBalance(l.ClosingBalance, domain.Equity), "Equity", l.AccountName))
	}
	t.Rows = append(t.Rows, line(r.PnL.NetProfit, "Equity", "Net Profit for the period"))
	return t
}

func ledgerTable(r *domain.FinancialReportData) Table {
	t := Table{Title: "General Ledger", Sheet: "General Ledger", Header: []string{"Account Name", "Debit Total", "Credit Total", "Closing Balance"}}
	groups := [][]domain.LedgerBalance{
		r.BalanceSheet.Assets, r.BalanceSheet.Liabilities, r.BalanceSheet.Equity,
		r.PnL.Expenses, r.PnL.Income, r.Trading.Revenue, r.Trading.COGS,
	}
	for _, group := range groups {
		for _, l := range group {
			t.Rows = append(t.Rows, Row{
				Cells:   []string{l.AccountName},
				Amounts: []decimal.Decimal{l.TotalDebit, l.TotalCredit, l.ClosingBalance},
			})
		}
	}
	return t
}

func costTable(r *domain.FinancialReportData) Table {
	t := Table{Title: "Cost Sheet", Sheet: "Cost Sheet", Header: []string{"Category", "Account Name", "Amount"}}
	subtotal := map[domain.CostCategory]Row{
		domain.DirectExpense:   line(r.CostSheet.PrimeCost, "Summary", "Prime Cost"),
		domain.FactoryOverhead: line(r.CostSheet.WorksCost, "Summary", "Works Cost"),
		domain.AdminOverhead:   line(r.CostSheet.CostOfProduction, "Summary", "Cost of Production"),
		domain.SellingOverhead: line(r.CostSheet.CostOfSales, "Summary", "Cost of Sales"),
	}
	for _, category := range domain.CostCategories {
		for _, l := range r.CostSheet.Details[category] {
			t.Rows = append(t.Rows, line(l.ClosingBalance, string(category), l.AccountName))
		}
		if row, ok := subtotal[category]; ok {
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}
