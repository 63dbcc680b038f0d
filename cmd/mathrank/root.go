package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/mathrank/internal/config"
)

// NewRootCmd creates the root command for mathrank.
// Running it without a subcommand performs a ranking.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Rank mathematicians by Wikipedia page views",
		Long: `mathrank fetches a page that lists mathematicians, one per list item,
looks up each name's Wikipedia page views for the last 60 days and prints
the ten most viewed, highest first.

Lookups that fail or return no usable statistic count as 0 hits and are
logged; they never stop the run. Only a failure to fetch the source page
itself is fatal.

Examples:
  # Rank the default list
  mathrank

  # Rank names from another page
  mathrank --url http://example.com/mathmen.htm

  # Output the ranking as JSON or Markdown
  mathrank --json
  mathrank --markdown`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		RunE:          runRankCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("url", "u", config.DefaultSourceURL,
		"Page whose list items name the mathematicians to rank")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
