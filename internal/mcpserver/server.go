// Package mcpserver exposes the annotator as Model Context Protocol tools
// over stdio. The tools drive the same presenters as the other front ends
// through a View.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cpgislands/internal/event"
	"cpgislands/internal/metadata"
	"cpgislands/internal/presenters"
	"cpgislands/pkg/logging"
)

// AnnotateResult is the payload of annotate_cpg_islands.
type AnnotateResult struct {
	SequenceLength int      `json:"sequence_length"`
	IslandSize     string   `json:"island_size"`
	MinimumGCRatio string   `json:"minimum_gc_ratio"`
	Count          int      `json:"count"`
	Locations      [][2]int `json:"locations"`
}

// LoadResult is the payload of load_sequence_file.
type LoadResult struct {
	Path     string `json:"path"`
	Length   int    `json:"length"`
	Sequence string `json:"sequence"`
}

// FeatureResult is the payload of get_feature.
type FeatureResult struct {
	Index int    `json:"index"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Bases string `json:"bases"`
}

// Server wraps an MCP server whose tools act on a View.
type Server struct {
	view   *View
	server *server.MCPServer

	// Presenters and models are single-threaded; one tool call at a time.
	mu sync.Mutex
}

// New creates the MCP server and registers its tools.
func New(view *View) *Server {
	s := &Server{
		view: view,
		server: server.NewMCPServer(
			metadata.Package,
			metadata.Version,
			server.WithToolCapabilities(false),
		),
	}
	s.server.AddTools(s.tools()...)
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.server
}

// Serve speaks the protocol on in and out until ctx is done or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info("MCPServer", "Serving MCP over stdio")
	return server.NewStdioServer(s.server).Listen(ctx, in, out)
}

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("annotate_cpg_islands",
				mcp.WithDescription("Find every window of island_size bases whose GC ratio is at least gc_ratio"),
				mcp.WithString("sequence",
					mcp.Required(),
					mcp.Description("DNA sequence made of A, C, G and T (any case)"),
				),
				mcp.WithString("island_size",
					mcp.Description("Window length in bases; defaults to the configured island size"),
				),
				mcp.WithString("gc_ratio",
					mcp.Description("Minimum GC ratio between 0 and 1; defaults to the configured ratio"),
				),
			),
			Handler: s.handleAnnotate,
		},
		{
			Tool: mcp.NewTool("load_sequence_file",
				mcp.WithDescription("Load the single record of a FASTA or GenBank file"),
				mcp.WithString("path",
					mcp.Required(),
					mcp.Description("Path of the sequence file"),
				),
			),
			Handler: s.handleLoadFile,
		},
		{
			Tool: mcp.NewTool("get_feature",
				mcp.WithDescription("Show one island of the last annotation"),
				mcp.WithNumber("index",
					mcp.Required(),
					mcp.Description("Zero-based island index"),
				),
			),
			Handler: s.handleGetFeature,
		},
		{
			Tool: mcp.NewTool("highlight_islands",
				mcp.WithDescription("List every island of the last annotation"),
			),
			Handler: s.handleHighlight,
		},
	}
}

func (s *Server) handleAnnotate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return mcp.NewToolResultError("sequence parameter is required"), nil
	}
	args := request.GetArguments()
	sub := presenters.Submission{
		Sequence:       seq,
		IslandSize:     argText(args, "island_size"),
		MinimumGCRatio: argText(args, "gc_ratio"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sub.IslandSize == "" {
		sub.IslandSize = s.view.defaultSize
	}
	if sub.MinimumGCRatio == "" {
		sub.MinimumGCRatio = s.view.defaultRatio
	}

	s.view.begin()
	s.view.submitted.Fire(sub)
	r := s.view.reply
	if r.errMessage != "" {
		return mcp.NewToolResultError(r.errMessage), nil
	}
	if !r.computed {
		return mcp.NewToolResultError("annotation produced no result"), nil
	}
	return jsonResult(AnnotateResult{
		SequenceLength: len(r.seq),
		IslandSize:     sub.IslandSize,
		MinimumGCRatio: sub.MinimumGCRatio,
		Count:          len(r.pairs),
		Locations:      r.pairs,
	})
}

func (s *Server) handleLoadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.begin()
	s.view.fileLoadRequested.Fire(path)
	r := s.view.reply
	if r.errMessage != "" {
		return mcp.NewToolResultError(r.errMessage), nil
	}
	return jsonResult(LoadResult{Path: path, Length: len(r.seq), Sequence: r.seq})
}

func (s *Server) handleGetFeature(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := intArg(request.GetArguments(), "index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.begin()
	s.view.featureSelected.Fire(index)
	r := s.view.reply
	if r.errMessage != "" {
		return mcp.NewToolResultError(r.errMessage), nil
	}
	if r.feature == nil {
		return mcp.NewToolResultError(fmt.Sprintf("Feature %d not available", index)), nil
	}
	return jsonResult(r.feature)
}

func (s *Server) handleHighlight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.begin()
	event.Emit(s.view.globalHighlight)
	pairs := s.view.reply.highlight
	if pairs == nil {
		pairs = [][2]int{}
	}
	return jsonResult(map[string]interface{}{"count": len(pairs), "locations": pairs})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// argText returns an optional argument as the text a user would have
// typed. Numbers sent by clients are formatted without loss.
func argText(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func intArg(args map[string]any, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%s parameter is required", key)
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
}
