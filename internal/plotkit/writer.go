package plotkit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format selects the output backend.
type Format string

const (
	PDF Format = "pdf"
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case PDF, SVG, PNG:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want pdf, svg, or png)", s)
}

// Ext returns the filename extension for the format, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// Write composes the panels side by side into one figure and writes it to w.
func Write(w io.Writer, s *Style, f Format, panels ...*Panel) error {
	if len(panels) == 0 {
		return errors.New("no panels to compose")
	}
	row := make([]*plot.Plot, len(panels))
	for i, pn := range panels {
		row[i] = pn.plot
	}

	var (
		dc  draw.Canvas
		out io.WriterTo
	)
	switch f {
	case PDF:
		c := vgpdf.New(s.Width, s.Height)
		dc = draw.New(c)
		out = c
	case SVG:
		c := vgsvg.New(s.Width, s.Height)
		dc = draw.New(c)
		out = c
	case PNG:
		c := vgimg.NewWith(vgimg.UseWH(s.Width, s.Height), vgimg.UseDPI(s.DPI))
		dc = draw.New(c)
		out = vgimg.PngCanvas{Canvas: c}
	default:
		return fmt.Errorf("unknown format %q", f)
	}

	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(panels),
		PadX: s.PanelPad,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for i, pl := range row {
		pl.Draw(canvases[0][i])
	}

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}

// Save renders the panels to path, overwriting any existing file.
func Save(path string, s *Style, f Format, panels ...*Panel) error {
	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(fd, s, f, panels...); err != nil {
		fd.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
