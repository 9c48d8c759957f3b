package plotkit

import (
	"fmt"
	"image/color"

	xfnt "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Panel is one sub-plot of a figure: axes, title, curves, annotations, and a
// legend. Set axis limits after adding all curves; adding data expands the
// auto-ranged limits.
type Panel struct {
	plot  *plot.Plot
	style *Style
}

// NewPanel returns a panel with the style's fonts and text handler applied
// to its title, axis labels, and legend.
func (s *Style) NewPanel(title, xlabel, ylabel string) *Panel {
	p := plot.New()

	p.Title.Text = title
	p.Title.TextStyle.Font = s.serif(s.TitleSize)
	p.Title.TextStyle.Font.Weight = xfnt.WeightBold
	p.Title.TextStyle.Handler = s.Handler

	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font = s.serif(s.LabelSize)
	p.X.Label.TextStyle.Handler = s.Handler
	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font = s.serif(s.LabelSize)
	p.Y.Label.TextStyle.Handler = s.Handler

	p.Legend.TextStyle.Font = s.serif(s.LegendSize)
	p.Legend.TextStyle.Handler = s.Handler

	return &Panel{plot: p, style: s}
}

// LineOpts controls one plotted curve.
type LineOpts struct {
	Color     color.Color
	Width     vg.Length // zero means the style default
	Dashed    bool
	FillAlpha float64 // fill beneath the curve at this opacity; 0 = no fill
	Label     string  // legend entry when non-empty
}

// Line plots ys over xs. The slices must be the same length.
func (pn *Panel) Line(xs, ys []float64, o LineOpts) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("line %q: %d x values vs %d y values", o.Label, len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line %q: %w", o.Label, err)
	}
	ln.Color = o.Color
	ln.Width = o.Width
	if ln.Width == 0 {
		ln.Width = pn.style.LineWidth
	}
	if o.Dashed {
		ln.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}
	if o.FillAlpha > 0 {
		ln.FillColor = WithAlpha(o.Color, o.FillAlpha)
	}
	pn.plot.Add(ln)
	if o.Label != "" {
		pn.plot.Legend.Add(o.Label, ln)
	}
	return nil
}

// Dot marks a single point with a filled circle.
func (pn *Panel) Dot(x, y float64, c color.Color, radius vg.Length) error {
	sc, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: c, Radius: radius, Shape: draw.CircleGlyph{}}
	pn.plot.Add(sc)
	return nil
}

// VLine draws a dotted vertical guide spanning the panel at x.
func (pn *Panel) VLine(x float64) {
	pn.plot.Add(&vlinePlotter{
		x: x,
		sty: draw.LineStyle{
			Color:  WithAlpha(pn.style.Gray, 0.5),
			Width:  vg.Points(0.7),
			Dashes: []vg.Length{vg.Points(1), vg.Points(3)},
		},
	})
}

// TextOpts controls free text placed in data coordinates.
type TextOpts struct {
	Color  color.Color
	Size   vg.Length // zero means the style base size
	Center bool      // horizontally center on the anchor
}

func (pn *Panel) textStyle(o TextOpts) text.Style {
	size := o.Size
	if size == 0 {
		size = pn.style.BaseSize
	}
	c := o.Color
	if c == nil {
		c = color.Black
	}
	sty := text.Style{
		Color:   c,
		Font:    pn.style.serif(size),
		Handler: pn.style.Handler,
	}
	if o.Center {
		sty.XAlign = text.XCenter
	}
	return sty
}

// Text places a label at (x, y) in data coordinates.
func (pn *Panel) Text(x, y float64, s string, o TextOpts) {
	pn.plot.Add(&textPlotter{sty: pn.textStyle(o), x: x, y: y, txt: s})
}

// Annotate places a label at (txtX, txtY) with an arrow pointing at
// (tipX, tipY), both in data coordinates.
func (pn *Panel) Annotate(s string, tipX, tipY, txtX, txtY float64, o TextOpts) {
	c := o.Color
	if c == nil {
		c = color.Black
	}
	pn.plot.Add(&arrowPlotter{
		sty: draw.LineStyle{Color: c, Width: vg.Points(1.3)},
		x0:  txtX, y0: txtY,
		x1: tipX, y1: tipY,
		head: vg.Points(4),
	})
	pn.Text(txtX, txtY, s, o)
}

// SpanArrow draws a double-headed arrow between two data points.
func (pn *Panel) SpanArrow(x0, y0, x1, y1 float64, c color.Color) {
	pn.plot.Add(&arrowPlotter{
		sty: draw.LineStyle{Color: c, Width: vg.Points(1.3)},
		x0:  x0, y0: y0,
		x1: x1, y1: y1,
		head:   vg.Points(4),
		double: true,
	})
}

// BoxedText places a centered label in a white box with a gray border.
func (pn *Panel) BoxedText(x, y float64, s string, size vg.Length) {
	pn.plot.Add(&boxedTextPlotter{
		sty: pn.textStyle(TextOpts{Size: size, Center: true}),
		x:   x, y: y,
		txt:    s,
		pad:    vg.Points(3),
		fill:   WithAlpha(color.White, 0.85),
		border: pn.style.Gray,
	})
}

// XLim fixes the horizontal axis range. Call after adding all curves.
func (pn *Panel) XLim(lo, hi float64) {
	pn.plot.X.Min, pn.plot.X.Max = lo, hi
}

// YLim fixes the vertical axis range. Call after adding all curves.
func (pn *Panel) YLim(lo, hi float64) {
	pn.plot.Y.Min, pn.plot.Y.Max = lo, hi
}

// HideTicks suppresses tick marks and labels on both axes; only the
// qualitative direction of each axis is conveyed.
func (pn *Panel) HideTicks() {
	pn.plot.X.Tick.Marker = plot.ConstantTicks(nil)
	pn.plot.Y.Tick.Marker = plot.ConstantTicks(nil)
}

// LegendPos names a legend corner.
type LegendPos int

const (
	LegendLowerRight LegendPos = iota
	LegendUpperRight
	LegendUpperLeft
)

// Legend positions the panel legend.
func (pn *Panel) Legend(pos LegendPos) {
	l := &pn.plot.Legend
	l.Padding = vg.Points(2)
	switch pos {
	case LegendUpperRight:
		l.Top = true
	case LegendUpperLeft:
		l.Top = true
		l.Left = true
	default:
		// lower right is the zero value
	}
	l.XOffs = -vg.Points(4)
	if l.Left {
		l.XOffs = vg.Points(4)
	}
	l.YOffs = vg.Points(4)
	if l.Top {
		l.YOffs = -vg.Points(4)
	}
}
