package plotkit

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Blue != Blue || s.Red != Red {
		t.Error("default style must carry the manuscript colors")
	}
	if s.Width != 10.5*vg.Inch || s.Height != 4.0*vg.Inch {
		t.Errorf("figure size: got %v x %v, want 10.5in x 4in", s.Width, s.Height)
	}
	if s.DPI != 300 {
		t.Errorf("DPI: got %d, want 300", s.DPI)
	}
	if s.Handler == nil {
		t.Error("default style must set a text handler")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#2166ac")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if c != (color.NRGBA{R: 0x21, G: 0x66, B: 0xac, A: 0xff}) {
		t.Errorf("got %v", c)
	}

	if _, err := ParseHexColor("2166ac"); err != nil {
		t.Errorf("bare hex should parse: %v", err)
	}
	for _, bad := range []string{"", "#21", "#2166zz11"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", bad)
		}
	}
}

func TestLoadProfile_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	body := "blue: \"#000080\"\nline_width: 1.0\ndpi: 150\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	s := DefaultStyle()
	if err := s.Apply(p); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if s.Blue != (color.NRGBA{B: 0x80, A: 0xff}) {
		t.Errorf("blue not overlaid: %v", s.Blue)
	}
	if s.LineWidth != vg.Points(1.0) {
		t.Errorf("line width not overlaid: %v", s.LineWidth)
	}
	if s.DPI != 150 {
		t.Errorf("dpi not overlaid: %d", s.DPI)
	}
	// untouched fields keep their defaults
	if s.Red != Red {
		t.Errorf("red should keep its default, got %v", s.Red)
	}
}

func TestLoadProfile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.json")
	if err := os.WriteFile(path, []byte(`{"red": "#ff0000"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Red == nil || *p.Red != "#ff0000" {
		t.Errorf("red not parsed from json: %+v", p)
	}
}

func TestLoadProfile_Missing(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing profile should error")
	}
}

func TestApply_BadColor(t *testing.T) {
	bad := "not-a-color"
	s := DefaultStyle()
	if err := s.Apply(&Profile{Blue: &bad}); err == nil {
		t.Error("invalid color should error")
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(Blue, 0.12).(color.NRGBA)
	if c.R != Blue.R || c.G != Blue.G || c.B != Blue.B {
		t.Errorf("channels changed: %v", c)
	}
	if c.A != 31 {
		t.Errorf("alpha: got %d, want 31", c.A)
	}
}
