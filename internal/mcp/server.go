// Package mcp exposes the figure catalog over the Model Context Protocol so
// an editor agent can list and re-render manuscript figures without shelling
// out. Transport is stdio; the server self-terminates when its parent dies.
package mcp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tpeng1977/entropy/internal/figure"
	"github.com/tpeng1977/entropy/internal/logging"
	"github.com/tpeng1977/entropy/internal/plotkit"
)

// Server wraps the MCP SDK server around the figure catalog.
type Server struct {
	MCPServer *sdkmcp.Server
	Style     *plotkit.Style

	// renders are serialized: one writer, deterministic output
	mu sync.Mutex
}

// NewServer returns a stdio-ready MCP server with the figure tools
// registered. A nil style means the built-in defaults.
func NewServer(style *plotkit.Style) *Server {
	if style == nil {
		style = plotkit.DefaultStyle()
	}
	s := &Server{Style: style}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "entropyfig", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_figures",
		Description: "List the manuscript figures this server can render, with their default output files.",
	}, s.handleListFigures)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "render_figure",
		Description: "Render one figure (or all) to vector/raster output, overwriting existing files. Returns the written paths.",
	}, s.handleRenderFigure)
}

// --- Tool input/output types ---

type listFiguresInput struct{}

type figureInfo struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Output string `json:"output"`
}

type listFiguresOutput struct {
	Figures []figureInfo `json:"figures"`
}

type renderFigureInput struct {
	Name   string `json:"name,omitempty" jsonschema:"figure name (mirror, distribution); empty renders all"`
	OutDir string `json:"out_dir,omitempty" jsonschema:"output directory (default: server working directory)"`
	Format string `json:"format,omitempty" jsonschema:"output format: pdf (default), svg, or png"`
}

type renderFigureOutput struct {
	Paths    []string `json:"paths"`
	Messages []string `json:"messages"`
}

// --- Tool handlers ---

func (s *Server) handleListFigures(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listFiguresInput) (*sdkmcp.CallToolResult, listFiguresOutput, error) {
	var out listFiguresOutput
	for _, f := range figure.All() {
		out.Figures = append(out.Figures, figureInfo{
			Name:   f.Name,
			Title:  f.Title,
			Output: f.Filename(plotkit.PDF),
		})
	}
	return nil, out, nil
}

func (s *Server) handleRenderFigure(ctx context.Context, _ *sdkmcp.CallToolRequest, input renderFigureInput) (*sdkmcp.CallToolResult, renderFigureOutput, error) {
	var names []string
	if input.Name != "" {
		names = []string{input.Name}
	}
	figs, err := figure.Resolve(names)
	if err != nil {
		return nil, renderFigureOutput{}, err
	}

	format := plotkit.PDF
	if input.Format != "" {
		if format, err = plotkit.ParseFormat(input.Format); err != nil {
			return nil, renderFigureOutput{}, err
		}
	}

	outDir := input.OutDir
	if outDir == "" {
		if outDir, err = os.Getwd(); err != nil {
			return nil, renderFigureOutput{}, fmt.Errorf("resolve working directory: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logging.New("mcp").Info("render requested", "figures", len(figs), "format", format, "out_dir", outDir)

	var msgs bytes.Buffer
	paths, err := figure.Render(figs, figure.RenderOptions{
		OutDir: outDir,
		Format: format,
		Style:  s.Style,
		Stdout: &msgs,
	})
	if err != nil {
		return nil, renderFigureOutput{}, fmt.Errorf("render: %w", err)
	}

	out := renderFigureOutput{Paths: paths}
	for _, line := range bytes.Split(bytes.TrimSpace(msgs.Bytes()), []byte("\n")) {
		out.Messages = append(out.Messages, string(line))
	}
	return nil, out, nil
}
