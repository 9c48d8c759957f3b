// entropyfig renders the manuscript's two conceptual figures as vector
// graphics.
//
// Usage:
//
//	entropyfig                      # render both figures into the cwd
//	entropyfig render [figure...]   # render named figures
//	entropyfig list                 # show the figure catalog
//	entropyfig serve                # MCP server over stdio
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tpeng1977/entropy/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "entropyfig",
	Short: "Render the mirror-paradox and distribution-change manuscript figures",
	Long: "entropyfig computes the closed-form curves behind two conceptual figures\n" +
		"(the mirror-state paradox and the long-time distribution comparison) and\n" +
		"renders them as publication vector graphics.\n\n" +
		"Run without arguments to render both figures into the current directory.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logging.Init(level, nil)
	},
	// the bare binary keeps the original zero-argument contract
	RunE: runRender,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
