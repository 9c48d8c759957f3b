package figure

import (
	"math"
	"testing"
)

func TestMirrorCurves_ExactReversal(t *testing.T) {
	_, sA, sB := mirrorCurves()
	if len(sA) != 800 || len(sB) != 800 {
		t.Fatalf("curve length: got %d/%d, want 800", len(sA), len(sB))
	}
	for i := range sA {
		if sB[i] != sA[799-i] {
			t.Fatalf("index %d: S_B = %v, S_A mirrored = %v", i, sB[i], sA[799-i])
		}
	}
}

func TestMirrorCurves_SharedMidpoint(t *testing.T) {
	grid, sA, sB := mirrorCurves()
	i0 := len(grid) / 2
	if d := math.Abs(sA[i0] - sB[i0]); d > 1e-9 {
		t.Errorf("midpoint values differ by %v", d)
	}
}

func TestMirrorCurves_GridBounds(t *testing.T) {
	grid, _, _ := mirrorCurves()
	if grid[0] != -3 || grid[len(grid)-1] != 3 {
		t.Errorf("grid spans [%v, %v], want [-3, 3]", grid[0], grid[len(grid)-1])
	}
}

func TestBuildMirror_TwoPanels(t *testing.T) {
	panels, err := buildMirror(testStyle())
	if err != nil {
		t.Fatalf("buildMirror: %v", err)
	}
	if len(panels) != 2 {
		t.Fatalf("got %d panels, want 2", len(panels))
	}
}

func TestBuildDistribution_TwoPanels(t *testing.T) {
	panels, err := buildDistribution(testStyle())
	if err != nil {
		t.Fatalf("buildDistribution: %v", err)
	}
	if len(panels) != 2 {
		t.Fatalf("got %d panels, want 2", len(panels))
	}
}
