// Package plotkit is the project-owned layer over gonum.org/v1/plot.
// Figure builders describe panels in data coordinates (curves, markers,
// annotations); plotkit owns colors, fonts, the LaTeX text handler, and the
// multi-panel composition into PDF, SVG, or PNG output.
package plotkit

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	yaml "gopkg.in/yaml.v3"
)

// latexFonts backs the LaTeX text handler. The handler resolves every font
// lookup through this cache, so it must never be nil.
var latexFonts = font.NewCache(liberation.Collection())

// Manuscript colors (ColorBrewer RdBu endpoints).
var (
	Blue = color.NRGBA{R: 0x21, G: 0x66, B: 0xac, A: 0xff} // #2166ac
	Red  = color.NRGBA{R: 0xb2, G: 0x18, B: 0x2b, A: 0xff} // #b2182b
	Gray = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Style is the one-time rendering configuration: the Go analogue of the
// original's global rcParams block. A Style is immutable once handed to the
// builders; Render passes one Style to every figure.
type Style struct {
	Blue color.Color
	Red  color.Color
	Gray color.Color

	BaseSize   vg.Length // annotations and free text
	LabelSize  vg.Length // axis labels
	TitleSize  vg.Length // panel titles
	LegendSize vg.Length

	LineWidth vg.Length // default curve stroke

	Width    vg.Length // full two-panel figure width
	Height   vg.Length
	PanelPad vg.Length // horizontal gap between panels

	DPI int // raster backends only; vector paths are unaffected

	// Handler typesets every label and title. The default renders
	// LaTeX math-mode text with serif fonts.
	Handler text.Handler
}

// DefaultStyle mirrors the manuscript's rendering configuration:
// serif LaTeX text, 11pt base, 10.5x4.0in two-panel figures at 300 DPI.
func DefaultStyle() *Style {
	return &Style{
		Blue:       Blue,
		Red:        Red,
		Gray:       Gray,
		BaseSize:   vg.Points(11),
		LabelSize:  vg.Points(13),
		TitleSize:  vg.Points(12),
		LegendSize: vg.Points(9.5),
		LineWidth:  vg.Points(2.3),
		Width:      10.5 * vg.Inch,
		Height:     4.0 * vg.Inch,
		PanelPad:   0.45 * vg.Inch,
		DPI:        300,
		Handler:    text.Latex{Fonts: latexFonts},
	}
}

// serif returns the serif font used for all typeset text, at the given size.
func (s *Style) serif(size vg.Length) font.Font {
	return font.Font{Typeface: "Liberation", Variant: "Serif", Size: size}
}

// Profile is an optional style overlay loaded from a YAML or JSON file.
// Nil fields keep the built-in defaults.
type Profile struct {
	Blue       *string  `yaml:"blue" json:"blue"`
	Red        *string  `yaml:"red" json:"red"`
	BaseSize   *float64 `yaml:"base_size" json:"base_size"`
	LabelSize  *float64 `yaml:"label_size" json:"label_size"`
	TitleSize  *float64 `yaml:"title_size" json:"title_size"`
	LegendSize *float64 `yaml:"legend_size" json:"legend_size"`
	LineWidth  *float64 `yaml:"line_width" json:"line_width"`
	WidthIn    *float64 `yaml:"width_in" json:"width_in"`
	HeightIn   *float64 `yaml:"height_in" json:"height_in"`
	DPI        *int     `yaml:"dpi" json:"dpi"`
}

// LoadProfile reads a style profile. Format is detected by extension
// (.yaml/.yml/.json) or, failing that, by the first non-whitespace byte.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style profile: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" && strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		ext = ".json"
	}

	var p Profile
	if ext == ".json" {
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse style profile json: %w", err)
		}
		return &p, nil
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse style profile yaml: %w", err)
	}
	return &p, nil
}

// Apply overlays the non-nil fields of p onto s.
func (s *Style) Apply(p *Profile) error {
	if p == nil {
		return nil
	}
	if p.Blue != nil {
		c, err := ParseHexColor(*p.Blue)
		if err != nil {
			return fmt.Errorf("blue: %w", err)
		}
		s.Blue = c
	}
	if p.Red != nil {
		c, err := ParseHexColor(*p.Red)
		if err != nil {
			return fmt.Errorf("red: %w", err)
		}
		s.Red = c
	}
	if p.BaseSize != nil {
		s.BaseSize = vg.Points(*p.BaseSize)
	}
	if p.LabelSize != nil {
		s.LabelSize = vg.Points(*p.LabelSize)
	}
	if p.TitleSize != nil {
		s.TitleSize = vg.Points(*p.TitleSize)
	}
	if p.LegendSize != nil {
		s.LegendSize = vg.Points(*p.LegendSize)
	}
	if p.LineWidth != nil {
		s.LineWidth = vg.Points(*p.LineWidth)
	}
	if p.WidthIn != nil {
		s.Width = vg.Length(*p.WidthIn) * vg.Inch
	}
	if p.HeightIn != nil {
		s.Height = vg.Length(*p.HeightIn) * vg.Inch
	}
	if p.DPI != nil {
		s.DPI = *p.DPI
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return nil, fmt.Errorf("hex color %q: want 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// WithAlpha returns c with its alpha scaled to the given opacity in [0, 1].
func WithAlpha(c color.Color, opacity float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(opacity*255 + 0.5)
	return n
}
