package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tpeng1977/entropy/internal/figure"
	"github.com/tpeng1977/entropy/internal/format"
	"github.com/tpeng1977/entropy/internal/plotkit"
)

var renderFlags struct {
	outDir    string
	formatStr string
	stylePath string
	summary   bool
}

var renderCmd = &cobra.Command{
	Use:   "render [figure...]",
	Short: "Render figures to vector-graphics files",
	Long: `Render the named figures, or all of them when none are given.

Usage:
  entropyfig render                         # both figures, PDF, cwd
  entropyfig render mirror                  # one figure
  entropyfig render --format=svg -o build/  # all figures as SVG into build/

Existing output files are overwritten. One "Saved <file>" line is printed
per written file.`,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderFlags.outDir, "out-dir", "o", ".", "Output directory")
	f.StringVar(&renderFlags.formatStr, "format", "pdf", "Output format: pdf, svg, or png")
	f.StringVar(&renderFlags.stylePath, "style", "", "Optional style profile (YAML or JSON) overlaying the defaults")
	f.BoolVar(&renderFlags.summary, "summary", false, "Print a table of written files and sizes")
}

func runRender(cmd *cobra.Command, args []string) error {
	figs, err := figure.Resolve(args)
	if err != nil {
		return err
	}

	outFormat, err := plotkit.ParseFormat(renderFlags.formatStr)
	if err != nil {
		return err
	}

	style := plotkit.DefaultStyle()
	if renderFlags.stylePath != "" {
		profile, err := plotkit.LoadProfile(renderFlags.stylePath)
		if err != nil {
			return err
		}
		if err := style.Apply(profile); err != nil {
			return fmt.Errorf("style profile %s: %w", renderFlags.stylePath, err)
		}
	}

	written, err := figure.Render(figs, figure.RenderOptions{
		OutDir: renderFlags.outDir,
		Format: outFormat,
		Style:  style,
		Stdout: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if renderFlags.summary {
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(written))
	}
	return nil
}

func renderSummary(paths []string) string {
	tb := format.NewTable(format.Terminal)
	tb.Header("FILE", "SIZE")
	var total int64
	for _, p := range paths {
		var size int64
		if fi, err := os.Stat(p); err == nil {
			size = fi.Size()
		}
		total += size
		tb.Row(p, format.FmtBytes(size))
	}
	tb.Footer("TOTAL", format.FmtBytes(total))
	tb.RightAlign(2)
	return tb.String()
}
