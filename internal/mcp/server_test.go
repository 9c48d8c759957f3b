package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListFigures(t *testing.T) {
	s := NewServer(nil)
	_, out, err := s.handleListFigures(context.Background(), nil, listFiguresInput{})
	if err != nil {
		t.Fatalf("list_figures: %v", err)
	}
	if len(out.Figures) != 2 {
		t.Fatalf("got %d figures, want 2", len(out.Figures))
	}
	byName := map[string]figureInfo{}
	for _, f := range out.Figures {
		byName[f.Name] = f
	}
	if byName["mirror"].Output != "fig_mirror_paradox.pdf" {
		t.Errorf("mirror output: got %q", byName["mirror"].Output)
	}
	if byName["distribution"].Title == "" {
		t.Error("distribution figure should carry a title")
	}
}

func TestRenderFigure_Single(t *testing.T) {
	dir := t.TempDir()
	s := NewServer(nil)

	_, out, err := s.handleRenderFigure(context.Background(), nil, renderFigureInput{
		Name:   "mirror",
		OutDir: dir,
	})
	if err != nil {
		t.Fatalf("render_figure: %v", err)
	}
	if len(out.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(out.Paths))
	}
	want := filepath.Join(dir, "fig_mirror_paradox.pdf")
	if out.Paths[0] != want {
		t.Errorf("path: got %q, want %q", out.Paths[0], want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("rendered file missing: %v", err)
	}
	if len(out.Messages) != 1 || !strings.HasPrefix(out.Messages[0], "Saved ") {
		t.Errorf("messages: got %v", out.Messages)
	}
}

func TestRenderFigure_AllByDefault(t *testing.T) {
	dir := t.TempDir()
	s := NewServer(nil)

	_, out, err := s.handleRenderFigure(context.Background(), nil, renderFigureInput{OutDir: dir})
	if err != nil {
		t.Fatalf("render_figure: %v", err)
	}
	if len(out.Paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(out.Paths))
	}
}

func TestRenderFigure_UnknownName(t *testing.T) {
	s := NewServer(nil)
	_, _, err := s.handleRenderFigure(context.Background(), nil, renderFigureInput{Name: "nope"})
	if err == nil {
		t.Fatal("expected an error for an unknown figure")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the unknown figure: %v", err)
	}
}

func TestRenderFigure_BadFormat(t *testing.T) {
	s := NewServer(nil)
	_, _, err := s.handleRenderFigure(context.Background(), nil, renderFigureInput{
		Name:   "mirror",
		Format: "tiff",
	})
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestWatchParent_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	WatchParent(ctx, cancel)
	cancel() // the goroutine must exit; nothing to assert beyond no panic
}
