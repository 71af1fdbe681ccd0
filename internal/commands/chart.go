package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SscSPs/finmatrix/internal/core/engine"
)

func newChartCommand(raw *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Print the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := renderMarkdown(chartMarkdown(), *raw)
			if err != nil {
				return fmt.Errorf("rendering chart: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func chartMarkdown() string {
	var b strings.Builder
	b.WriteString("# Chart of Accounts\n\n")
	b.WriteString("| Code | Name | Type | Cost Category | Direct |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, h := range engine.DefaultChart() {
		direct := ""
		if h.IsDirect {
			direct = "yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", h.Code, h.Name, h.Type, h.CostCategory, direct)
	}
	b.WriteString("\nAccounts not listed here are reported as indirect expenses.\n")
	return b.String()
}
