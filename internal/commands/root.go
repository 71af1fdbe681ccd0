// Package commands implements the finmatrix command line.
package commands

import (
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

const wordWrap = 120

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var raw bool

	rootCmd := &cobra.Command{
		Use:     "finmatrix",
		Short:   "Financial statements from double-entry journals",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&raw, "raw", false, "print Markdown without terminal styling")

	rootCmd.AddCommand(newReportCommand(&raw))
	rootCmd.AddCommand(newChartCommand(&raw))

	return rootCmd
}

// renderMarkdown styles md for the terminal unless raw output was asked for.
func renderMarkdown(md string, raw bool) (string, error) {
	if raw {
		return md, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
