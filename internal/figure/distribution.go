package figure

import (
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/tpeng1977/entropy/internal/numeric"
	"github.com/tpeng1977/entropy/internal/plotkit"
)

// Headroom multipliers leave room above the curves for the peak annotations;
// they are presentation constants, not derived quantities.
const (
	translationHeadroom = 1.35
	structuralHeadroom  = 1.4
)

const (
	distXLabel = `$S$ (low $\to$ high)`
	distYLabel = `$P_{\infty}^{(E)}(S;\lambda)$`
)

func buildDistribution(s *plotkit.Style) ([]*plotkit.Panel, error) {
	// panel (a): pure translation under a common scaling
	grid := numeric.Linspace(-1, 9, 800)
	const (
		mu    = 4.0
		sigma = 0.8
		shift = 1.5
	)
	p1 := numeric.Gauss(grid, mu, sigma)
	p2 := numeric.Gauss(grid, mu+shift, sigma)

	a := s.NewPanel(`(a) Translation only (common scaling)`, distXLabel, distYLabel)
	if err := a.Line(grid, p1, plotkit.LineOpts{
		Color: s.Blue, FillAlpha: 0.12, Label: `$P_\infty^{(E)}(S;\lambda_1)$`,
	}); err != nil {
		return nil, err
	}
	if err := a.Line(grid, p2, plotkit.LineOpts{
		Color: s.Red, Dashed: true, FillAlpha: 0.12, Label: `$P_\infty^{(E)}(S;\lambda_2)$`,
	}); err != nil {
		return nil, err
	}

	pk := numeric.GaussAt(mu, mu, sigma)
	a.SpanArrow(mu, pk*1.04, mu+shift, pk*1.04, s.Gray)
	a.Text(mu+shift/2, pk*1.10, `$k_B\ln c$`,
		plotkit.TextOpts{Color: s.Gray, Size: vg.Points(10), Center: true})

	a.Legend(plotkit.LegendUpperRight)
	a.YLim(0, translationHeadroom*math.Max(numeric.Max(p1), numeric.Max(p2)))
	a.HideTicks()

	// panel (b): structural change, unimodal vs bimodal mixture
	gridB := numeric.Linspace(-2, 10, 800)
	const (
		sMax     = 8.0 // unconstrained: single peak at high S
		sLo      = 1.0 // constrained: low-S peak (taller)
		sHi      = 4.5 // constrained: high-S peak (lower)
		sigmaUnc = 0.5
		wLo      = 0.62
		wHi      = 0.38
	)
	p1b := numeric.Gauss(gridB, sMax, sigmaUnc)
	p2b := numeric.Mixture(gridB,
		numeric.Component{Weight: wLo, Mu: sLo, Sigma: 0.5},
		numeric.Component{Weight: wHi, Mu: sHi, Sigma: 0.5},
	)

	b := s.NewPanel(`(b) Structural change (constraint-reshaped)`, distXLabel, distYLabel)
	if err := b.Line(gridB, p1b, plotkit.LineOpts{
		Color: s.Blue, FillAlpha: 0.12, Label: `$P_\infty^{(E)}(S;\lambda_1)$`,
	}); err != nil {
		return nil, err
	}
	if err := b.Line(gridB, p2b, plotkit.LineOpts{
		Color: s.Red, Dashed: true, FillAlpha: 0.12, Label: `$P_\infty^{(E)}(S;\lambda_2)$`,
	}); err != nil {
		return nil, err
	}

	pkBlue := numeric.GaussAt(sMax, sMax, sigmaUnc)
	b.Annotate(`$S_{\max}$ (unconstrained)`, sMax, pkBlue, sMax, pkBlue*1.22,
		plotkit.TextOpts{Color: s.Blue, Size: vg.Points(10), Center: true})
	hiPeak := wHi * numeric.GaussAt(sHi, sHi, 0.5)
	b.Annotate(`(high $S$ peak lower)`, sHi, hiPeak, 3.2, hiPeak*1.35,
		plotkit.TextOpts{Color: s.Red, Size: vg.Points(9)})

	b.Legend(plotkit.LegendUpperLeft)
	b.YLim(0, structuralHeadroom*math.Max(numeric.Max(p1b), numeric.Max(p2b)))
	b.HideTicks()

	return []*plotkit.Panel{a, b}, nil
}
