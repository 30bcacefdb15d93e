package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgislands/internal/cpg"
	"cpgislands/internal/loader"
	"cpgislands/internal/models"
	"cpgislands/internal/presenters"
)

func newTestServer(t *testing.T) (*Server, *View) {
	t.Helper()
	view := NewView()

	seqInput := models.NewSeqInputModel(loader.New())
	results := models.NewResultsModel()
	app := models.NewApplicationModel(seqInput, results, cpg.IslandDefinition{IslandSize: 4, MinimumGCRatio: 0.5})

	presenters.NewApplicationPresenter(app, view).RegisterForEvents()
	presenters.NewSeqInputPresenter(seqInput, view).RegisterForEvents()
	presenters.NewResultsPresenter(results, view).RegisterForEvents()
	app.Run(nil)

	return New(view), view
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text, result.IsError
}

func TestServer_StartsView(t *testing.T) {
	_, view := newTestServer(t)
	assert.True(t, view.Started())
}

func TestServer_Annotate(t *testing.T) {
	s, _ := newTestServer(t)

	text, isErr := callTool(t, s.handleAnnotate, map[string]any{
		"sequence":    "ATatgcGCAtaT",
		"island_size": "4",
		"gc_ratio":    0.5,
	})
	require.False(t, isErr, text)

	var got AnnotateResult
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, 12, got.SequenceLength)
	assert.Equal(t, "4", got.IslandSize)
	assert.Equal(t, "0.5", got.MinimumGCRatio)
	assert.Equal(t, 5, got.Count)
	assert.Equal(t, [][2]int{{2, 6}, {3, 7}, {4, 8}, {5, 9}, {6, 10}}, got.Locations)
}

func TestServer_AnnotateDefaults(t *testing.T) {
	s, _ := newTestServer(t)

	text, isErr := callTool(t, s.handleAnnotate, map[string]any{"sequence": "GGGG"})
	require.False(t, isErr, text)

	var got AnnotateResult
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, "4", got.IslandSize)
	assert.Equal(t, "0.5", got.MinimumGCRatio)
	assert.Equal(t, [][2]int{{0, 4}}, got.Locations)
}

func TestServer_AnnotateErrors(t *testing.T) {
	s, _ := newTestServer(t)

	text, isErr := callTool(t, s.handleAnnotate, map[string]any{"sequence": "ABCD", "island_size": "3", "gc_ratio": "0.5"})
	assert.True(t, isErr)
	assert.Equal(t, "Sequence letters not within alphabet:\n  Alphabet: GATC\n  Sequence: ABCD", text)

	text, isErr = callTool(t, s.handleAnnotate, map[string]any{"sequence": "ACGT", "island_size": "invalid size"})
	assert.True(t, isErr)
	assert.Equal(t, "Invalid integer for island size: invalid size", text)

	text, isErr = callTool(t, s.handleAnnotate, map[string]any{})
	assert.True(t, isErr)
	assert.Equal(t, "sequence parameter is required", text)
}

func TestServer_FeatureAndHighlight(t *testing.T) {
	s, _ := newTestServer(t)

	_, isErr := callTool(t, s.handleAnnotate, map[string]any{"sequence": "ATATGCGCATAT"})
	require.False(t, isErr)

	text, isErr := callTool(t, s.handleGetFeature, map[string]any{"index": float64(1)})
	require.False(t, isErr, text)
	var feature FeatureResult
	require.NoError(t, json.Unmarshal([]byte(text), &feature))
	assert.Equal(t, FeatureResult{Index: 1, Start: 3, End: 7, Bases: "TGCG"}, feature)

	text, isErr = callTool(t, s.handleGetFeature, map[string]any{"index": float64(5)})
	assert.True(t, isErr)
	assert.Equal(t, "Feature index 5 out of range (5 features)", text)

	text, isErr = callTool(t, s.handleGetFeature, map[string]any{"index": 1.5})
	assert.True(t, isErr)
	assert.Equal(t, "index must be an integer", text)

	text, isErr = callTool(t, s.handleHighlight, nil)
	require.False(t, isErr)
	assert.JSONEq(t, `{"count":5,"locations":[[2,6],[3,7],[4,8],[5,9],[6,10]]}`, text)
}

func TestServer_LoadFile(t *testing.T) {
	s, _ := newTestServer(t)
	path := filepath.Join(t.TempDir(), "seq.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">x\nACGTACGT\n"), 0644))

	text, isErr := callTool(t, s.handleLoadFile, map[string]any{"path": path})
	require.False(t, isErr, text)
	var got LoadResult
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, LoadResult{Path: path, Length: 8, Sequence: "ACGTACGT"}, got)

	text, isErr = callTool(t, s.handleLoadFile, map[string]any{"path": filepath.Join(t.TempDir(), "missing.gb")})
	assert.True(t, isErr)
	assert.Contains(t, text, "Sequence parsing error: cannot read")
}

func TestServer_ConcurrentCallsAreSerialized(t *testing.T) {
	s, _ := newTestServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seq := "ATATGCGCATAT"
			want := 5
			if i%2 == 0 {
				seq, want = "AAAAAAAA", 0
			}
			req := mcp.CallToolRequest{}
			req.Params.Arguments = map[string]any{"sequence": seq}
			result, err := s.handleAnnotate(context.Background(), req)
			if !assert.NoError(t, err) || !assert.False(t, result.IsError) {
				return
			}
			text, ok := mcp.AsTextContent(result.Content[0])
			if !assert.True(t, ok) {
				return
			}
			var got AnnotateResult
			assert.NoError(t, json.Unmarshal([]byte(text.Text), &got))
			assert.Equal(t, want, got.Count)
		}(i)
	}
	wg.Wait()
}

func TestServer_ListsTools(t *testing.T) {
	s, _ := newTestServer(t)

	resp := s.MCPServer().HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, name := range []string{"annotate_cpg_islands", "load_sequence_file", "get_feature", "highlight_islands"} {
		assert.Contains(t, string(data), name)
	}
}

func TestArgText(t *testing.T) {
	args := map[string]any{"a": "text", "b": float64(200), "c": 0.25, "d": true}
	assert.Equal(t, "text", argText(args, "a"))
	assert.Equal(t, "200", argText(args, "b"))
	assert.Equal(t, "0.25", argText(args, "c"))
	assert.Equal(t, "true", argText(args, "d"))
	assert.Equal(t, "", argText(args, "missing"))
}
