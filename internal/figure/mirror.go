package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/tpeng1977/entropy/internal/numeric"
	"github.com/tpeng1977/entropy/internal/plotkit"
)

// The texture curves in the consequence panel are visual filler suggesting
// candidate trajectories; amplitudes and phases are tuned, not derived.
var textureWaves = []struct{ amp, phase float64 }{
	{0.35, 0},
	{-0.28, 1.1},
	{0.22, 2.5},
}

// mirrorCurves returns the sample grid, the base profile S_A, and its
// index-reversed mirror S_B. The two meet at the grid midpoint by
// construction.
func mirrorCurves() (t, sA, sB []float64) {
	t = numeric.Linspace(-3, 3, 800)
	sA = make([]float64, len(t))
	for i, x := range t {
		sA[i] = 2.0 + 0.8*math.Tanh(0.5*x) + 0.06*math.Sin(3.5*x)
	}
	sB = numeric.Reversed(sA)
	return t, sA, sB
}

func buildMirror(s *plotkit.Style) ([]*plotkit.Panel, error) {
	t, sA, sB := mirrorCurves()
	s0 := sA[len(t)/2]

	// panel (a): the construction
	a := s.NewPanel(`(a) Mirror-state construction`, `$t$`, `$S$`)
	if err := a.Line(t, sA, plotkit.LineOpts{Color: s.Blue, Label: `$S_A(t)$`}); err != nil {
		return nil, err
	}
	if err := a.Line(t, sB, plotkit.LineOpts{Color: s.Red, Dashed: true, Label: `$S_B(t)=S_A(2t_0-t)$`}); err != nil {
		return nil, err
	}
	if err := a.Dot(0, s0, color.Black, vg.Points(3.5)); err != nil {
		return nil, err
	}
	a.VLine(0)
	a.Text(0.15, s0-0.18, `$t_0$`, plotkit.TextOpts{Size: vg.Points(12)})

	xr := 1.6
	ir := numeric.NearestIndex(t, xr)
	a.Annotate(`$\Delta S_A \geq 0$`, xr, sA[ir], 2.05, s0-0.35,
		plotkit.TextOpts{Color: s.Blue, Size: vg.Points(10)})
	a.Annotate(`$\Delta S_B \geq 0$ ?`, xr, sB[ir], 2.05, s0+0.30,
		plotkit.TextOpts{Color: s.Red, Size: vg.Points(10)})
	a.BoxedText(0, s0+0.58, `$S_A(t_0)=S_B(t_0)$`, vg.Points(10))

	a.Legend(plotkit.LegendLowerRight)
	a.XLim(-3, 3.5)
	a.HideTicks()

	// panel (b): the consequence
	b := s.NewPanel(`(b) Consequence of universal monotonicity`, `$t$`, `$S$`)
	if err := b.Line(t, numeric.Constant(len(t), s0), plotkit.LineOpts{
		Color: color.Black,
		Width: vg.Points(2.8),
		Label: `$S(t)=\mathrm{const}$`,
	}); err != nil {
		return nil, err
	}
	for _, w := range textureWaves {
		wave := make([]float64, len(t))
		for i, x := range t {
			wave[i] = s0 + w.amp*math.Sin(0.9*x+w.phase)
		}
		if err := b.Line(t, wave, plotkit.LineOpts{
			Color: plotkit.WithAlpha(s.Gray, 0.20),
			Width: vg.Points(1.5),
		}); err != nil {
			return nil, err
		}
	}

	// five sample points, each marked as a two-sided local minimum
	const d = 0.25
	for _, ti := range numeric.Linspace(-2, 2, 5) {
		if err := b.Dot(ti, s0, color.Black, vg.Points(2)); err != nil {
			return nil, err
		}
		if err := b.Line(
			[]float64{ti - d, ti, ti + d},
			[]float64{s0 + 0.12, s0, s0 + 0.12},
			plotkit.LineOpts{Color: s.Red, Width: vg.Points(1.1)},
		); err != nil {
			return nil, err
		}
	}

	b.Text(0, s0-0.50, `Every point is a two-sided local minimum`,
		plotkit.TextOpts{Color: s.Gray, Size: vg.Points(10), Center: true})
	b.Text(0, s0-0.66, `$\Rightarrow$ continuous $S(t)$ must be constant.`,
		plotkit.TextOpts{Color: s.Gray, Size: vg.Points(10), Center: true})

	b.Legend(plotkit.LegendUpperRight)
	b.XLim(-3, 3)
	b.YLim(s0-0.85, s0+0.85)
	b.HideTicks()

	return []*plotkit.Panel{a, b}, nil
}
