package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/SscSPs/finmatrix/internal/core/engine"
	"github.com/SscSPs/finmatrix/internal/dto"
	"github.com/SscSPs/finmatrix/internal/export"
	"github.com/SscSPs/finmatrix/internal/importer"
	"github.com/SscSPs/finmatrix/internal/utils"
)

const localClientID = "local"

type reportOptions struct {
	company  string
	format   string
	tab      string
	out      string
	currency string
	raw      bool
}

func newReportCommand(raw *bool) *cobra.Command {
	opts := reportOptions{}

	cmd := &cobra.Command{
		Use:   "report <entries.csv>",
		Short: "Build financial statements from a CSV of journal entries",
		Long: "Reads Date,Description,DebitAccount,CreditAccount,Amount lines and prints the\n" +
			"trading account, profit and loss, balance sheet, general ledger and cost sheet.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.raw = *raw
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			return runReport(cmd.OutOrStdout(), logger, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.company, "company", "", "company name printed on the report (default: file name)")
	cmd.Flags().StringVar(&opts.format, "format", "md", "output format: json, md, html, csv or xlsx")
	cmd.Flags().StringVar(&opts.tab, "tab", string(export.TabTrading), "tab for csv output: trading, balance, ledger or cost")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&opts.currency, "currency", utils.DefaultReportCurrency, "ISO 4217 code for formatted amounts")

	return cmd
}

func runReport(stdout io.Writer, logger *slog.Logger, path string, opts reportOptions) error {
	report, skipped, err := reportFromFile(path)
	if err != nil {
		return err
	}
	if skipped > 0 {
		logger.Warn("Skipped incomplete lines", slog.String("file", path), slog.Int("skipped", skipped))
	}
	if opts.company == "" {
		opts.company = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if opts.out == "" {
		return writeReport(stdout, report, opts)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", opts.out, err)
	}
	// files always get plain Markdown
	opts.raw = true
	return writeAndClose(f, opts.out, func(w io.Writer) error {
		return writeReport(w, report, opts)
	})
}

// writeAndClose runs write against wc and closes it. The Close error is returned
// unless write already failed.
func writeAndClose(wc io.WriteCloser, name string, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}

func writeReport(w io.Writer, report *domain.FinancialReportData, opts reportOptions) error {
	switch opts.format {
	case "json":
		resp := dto.ToFinancialReportResponse(opts.company, opts.currency, report)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "md":
		out, err := renderMarkdown(export.Markdown(report, opts.company, opts.currency), opts.raw)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	case "csv":
		tab, err := export.ParseTab(opts.tab)
		if err != nil {
			return err
		}
		return export.WriteCSV(w, report, tab, opts.company)
	case "html":
		return export.WriteHTML(w, report, opts.company, opts.currency)
	case "xlsx":
		if opts.out == "" {
			return errors.New("xlsx output needs --out")
		}
		return export.WriteXLSX(w, report, opts.company)
	default:
		return fmt.Errorf("%w: unknown format %q", apperrors.ErrValidation, opts.format)
	}
}

// reportFromFile reads an entry upload and runs it through the default chart.
// It also returns the number of incomplete lines that were skipped.
func reportFromFile(path string) (*domain.FinancialReportData, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := importer.ReadEntries(f)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]domain.JournalEntry, len(res.Rows))
	for i, row := range res.Rows {
		entries[i] = domain.JournalEntry{
			EntryID:       strconv.Itoa(row.Line),
			Date:          row.Date,
			Description:   row.Description,
			DebitAccount:  row.DebitAccount,
			CreditAccount: row.CreditAccount,
			Amount:        row.Amount,
			ClientID:      localClientID,
		}
	}

	report := engine.New(nil).GenerateReport(entries)
	return &report, res.Skipped, nil
}
