package export

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/SscSPs/finmatrix/internal/utils"
)

// Markdown renders every tab as a Markdown table, formatting amounts in currency.
func Markdown(report *domain.FinancialReportData, company, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", escapeCell(company))

	for _, tab := range Tabs {
		table, err := BuildTable(report, tab)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", table.Title)
		b.WriteString("| " + strings.Join(table.Header, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(table.Header)) + "\n")
		for _, row := range table.Rows {
			cells := make([]string, 0, len(row.Cells)+len(row.Amounts))
			for _, c := range row.Cells {
				cells = append(cells, escapeCell(c))
			}
			for _, a := range row.Amounts {
				cells = append(cells, utils.FormatAmount(a, currency))
			}
			b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
