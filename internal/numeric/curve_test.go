package numeric

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/integrate"
)

func TestLinspace_Endpoints(t *testing.T) {
	grid := Linspace(-3, 3, 800)
	if len(grid) != 800 {
		t.Fatalf("expected 800 points, got %d", len(grid))
	}
	if grid[0] != -3 || grid[799] != 3 {
		t.Errorf("endpoints: got [%v, %v], want [-3, 3]", grid[0], grid[799])
	}
	step := grid[1] - grid[0]
	for i := 1; i < len(grid); i++ {
		if d := grid[i] - grid[i-1]; math.Abs(d-step) > 1e-12 {
			t.Fatalf("uneven spacing at %d: %v vs %v", i, d, step)
		}
	}
}

func TestGauss_MatchesClosedForm(t *testing.T) {
	grid := Linspace(-2, 2, 5)
	got := Gauss(grid, 0.5, 0.8)
	want := make([]float64, len(grid))
	for i, x := range grid {
		z := (x - 0.5) / 0.8
		want[i] = math.Exp(-0.5*z*z) / (0.8 * math.Sqrt(2*math.Pi))
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b float64) bool {
		return math.Abs(a-b) < 1e-12
	})); diff != "" {
		t.Errorf("gauss mismatch (-want +got):\n%s", diff)
	}
}

func TestGauss_Normalization(t *testing.T) {
	for _, sigma := range []float64{0.5, 0.8, 1.0} {
		grid := Linspace(-10, 10, 4001)
		area := integrate.Trapezoidal(grid, Gauss(grid, 0, sigma))
		if math.Abs(area-1) > 1e-3 {
			t.Errorf("sigma=%v: integral = %v, want 1 within 1e-3", sigma, area)
		}
	}
}

func TestGauss_PeakAtMean(t *testing.T) {
	const mu, sigma = 4.0, 0.8
	peak := GaussAt(mu, mu, sigma)
	for _, x := range Linspace(-1, 9, 801) {
		if GaussAt(x, mu, sigma) > peak {
			t.Fatalf("density at %v exceeds the peak at the mean", x)
		}
	}
}

func TestMixture_Normalization(t *testing.T) {
	grid := Linspace(-10, 16, 4001)
	p := Mixture(grid,
		Component{Weight: 0.62, Mu: 1.0, Sigma: 0.5},
		Component{Weight: 0.38, Mu: 4.5, Sigma: 0.5},
	)
	area := integrate.Trapezoidal(grid, p)
	if math.Abs(area-1) > 1e-3 {
		t.Errorf("mixture integral = %v, want 1 within 1e-3", area)
	}
}

func TestReversed(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	got := Reversed(in)
	if diff := cmp.Diff([]float64{4, 3, 2, 1}, got); diff != "" {
		t.Errorf("reversed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4}, in); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestNearestIndex(t *testing.T) {
	grid := Linspace(-3, 3, 7)
	cases := []struct {
		x    float64
		want int
	}{
		{-3.5, 0},
		{-3, 0},
		{0.4, 3},
		{1.6, 5},
		{3.2, 6},
	}
	for _, c := range cases {
		if got := NearestIndex(grid, c.x); got != c.want {
			t.Errorf("NearestIndex(%v) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestConstant(t *testing.T) {
	c := Constant(5, 2.5)
	for i, v := range c {
		if v != 2.5 {
			t.Fatalf("index %d: got %v, want 2.5", i, v)
		}
	}
}
