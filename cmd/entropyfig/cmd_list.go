package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tpeng1977/entropy/internal/figure"
	"github.com/tpeng1977/entropy/internal/format"
	"github.com/tpeng1977/entropy/internal/plotkit"
)

var listMarkdown bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the figure catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		mode := format.Terminal
		if listMarkdown {
			mode = format.Markdown
		}
		tb := format.NewTable(mode)
		tb.Header("NAME", "TITLE", "OUTPUT")
		for _, f := range figure.All() {
			tb.Row(f.Name, f.Title, f.Filename(plotkit.PDF))
		}
		fmt.Fprintln(cmd.OutOrStdout(), tb.String())
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listMarkdown, "markdown", false, "Render the catalog as a Markdown table")
}
