package export

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/SscSPs/finmatrix/internal/core/domain"
)

var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.Table))

// WriteHTML writes every tab as a standalone, printable HTML page. Raw HTML in
// account or company names is dropped by the renderer, not passed through.
func WriteHTML(w io.Writer, report *domain.FinancialReportData, company, currency string) error {
	var body bytes.Buffer
	if err := markdownToHTML.Convert([]byte(Markdown(report, company, currency)), &body); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		html.EscapeString(company)); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
