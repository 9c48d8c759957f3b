// Package figure holds the manuscript figure catalog and the render
// orchestration. Each figure is a named builder that produces two side-by-side
// panels from closed-form curves; Render composes and writes them one at a
// time, overwriting existing output.
package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tpeng1977/entropy/internal/logging"
	"github.com/tpeng1977/entropy/internal/plotkit"
)

// Figure is one renderable two-panel figure.
type Figure struct {
	Name  string // CLI and MCP handle
	Title string // human-readable description
	Base  string // output file base name; extension follows the format
	Build func(s *plotkit.Style) ([]*plotkit.Panel, error)
}

// Filename returns the output file name for the given format.
func (f Figure) Filename(format plotkit.Format) string {
	return f.Base + format.Ext()
}

var catalog = []Figure{
	{
		Name:  "mirror",
		Title: "Mirror-state paradox: construction and consequence",
		Base:  "fig_mirror_paradox",
		Build: buildMirror,
	},
	{
		Name:  "distribution",
		Title: "Long-time distribution: translation vs structural change",
		Base:  "fig_distribution_change",
		Build: buildDistribution,
	},
}

// All returns the full catalog in render order.
func All() []Figure {
	out := make([]Figure, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the sorted figure names.
func Names() []string {
	names := make([]string, len(catalog))
	for i, f := range catalog {
		names[i] = f.Name
	}
	sort.Strings(names)
	return names
}

// Lookup finds a figure by name.
func Lookup(name string) (Figure, error) {
	for _, f := range catalog {
		if f.Name == name {
			return f, nil
		}
	}
	return Figure{}, fmt.Errorf("unknown figure %q (known: %s)", name, strings.Join(Names(), ", "))
}

// Resolve maps figure names to catalog entries. An empty list means all
// figures.
func Resolve(names []string) ([]Figure, error) {
	if len(names) == 0 {
		return All(), nil
	}
	figs := make([]Figure, 0, len(names))
	for _, n := range names {
		f, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		figs = append(figs, f)
	}
	return figs, nil
}

// RenderOptions configures one render pass. Zero values mean: current
// directory, PDF, the default style, and os.Stdout for confirmation lines.
type RenderOptions struct {
	OutDir string
	Format plotkit.Format
	Style  *plotkit.Style
	Stdout io.Writer
}

// Render builds and writes each figure in order, printing "Saved <file>" per
// written file. The first failure aborts the pass; files already written stay
// on disk. Returns the paths written.
func Render(figs []Figure, opts RenderOptions) ([]string, error) {
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	if opts.Format == "" {
		opts.Format = plotkit.PDF
	}
	if opts.Style == nil {
		opts.Style = plotkit.DefaultStyle()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	log := logging.New("render")
	var written []string
	for _, f := range figs {
		panels, err := f.Build(opts.Style)
		if err != nil {
			return written, fmt.Errorf("build %s: %w", f.Name, err)
		}
		path := filepath.Join(opts.OutDir, f.Filename(opts.Format))
		log.Debug("rendering figure", "figure", f.Name, "panels", len(panels), "path", path)
		if err := plotkit.Save(path, opts.Style, opts.Format, panels...); err != nil {
			return written, err
		}
		fmt.Fprintf(opts.Stdout, "Saved %s\n", path)
		written = append(written, path)
	}
	return written, nil
}
