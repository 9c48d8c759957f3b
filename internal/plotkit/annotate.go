package plotkit

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The plotters below draw in data coordinates resolved at draw time, so they
// never participate in axis auto-ranging: annotations decorate the data, the
// data never stretches to fit an annotation.

// textPlotter draws a single label.
type textPlotter struct {
	sty  text.Style
	x, y float64
	txt  string
}

func (tp *textPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	c.FillText(tp.sty, vg.Point{X: trX(tp.x), Y: trY(tp.y)}, tp.txt)
}

// arrowPlotter draws a straight arrow from (x0, y0) to (x1, y1) with a barbed
// head at the tip, and at the tail too when double is set.
type arrowPlotter struct {
	sty            draw.LineStyle
	x0, y0, x1, y1 float64
	head           vg.Length
	double         bool
}

func (a *arrowPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	tail := vg.Point{X: trX(a.x0), Y: trY(a.y0)}
	tip := vg.Point{X: trX(a.x1), Y: trY(a.y1)}
	c.StrokeLine2(a.sty, tail.X, tail.Y, tip.X, tip.Y)
	a.barbs(c, tail, tip)
	if a.double {
		a.barbs(c, tip, tail)
	}
}

func (a *arrowPlotter) barbs(c draw.Canvas, from, to vg.Point) {
	ang := math.Atan2(float64(to.Y-from.Y), float64(to.X-from.X))
	for _, off := range []float64{0.45, -0.45} {
		t := ang + math.Pi + off
		end := vg.Point{
			X: to.X + a.head*vg.Length(math.Cos(t)),
			Y: to.Y + a.head*vg.Length(math.Sin(t)),
		}
		c.StrokeLine2(a.sty, to.X, to.Y, end.X, end.Y)
	}
}

// vlinePlotter draws a vertical guide across the full panel height.
type vlinePlotter struct {
	x   float64
	sty draw.LineStyle
}

func (v *vlinePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	x := trX(v.x)
	c.StrokeLine2(v.sty, x, c.Min.Y, x, c.Max.Y)
}

// boxedTextPlotter draws a label on a filled, bordered box.
type boxedTextPlotter struct {
	sty    text.Style
	x, y   float64
	txt    string
	pad    vg.Length
	fill   color.Color
	border color.Color
}

func (bp *boxedTextPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	anchor := vg.Point{X: trX(bp.x), Y: trY(bp.y)}

	rect := bp.sty.Rectangle(bp.txt)
	min := rect.Min.Add(anchor).Add(vg.Point{X: -bp.pad, Y: -bp.pad})
	max := rect.Max.Add(anchor).Add(vg.Point{X: bp.pad, Y: bp.pad})
	box := []vg.Point{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	}

	c.FillPolygon(bp.fill, box)
	c.StrokeLines(draw.LineStyle{Color: bp.border, Width: vg.Points(0.8)}, append(box, box[0]))
	c.FillText(bp.sty, anchor, bp.txt)
}
