package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/goccy/go-json"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/jikan"
	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/tmdb"
	"github.com/Harshitv21/Anime-Movie-API/internal/projection"
)

// Deps holds the upstream clients backing the MCP tools. ImageBase is the
// prefix applied to relative image paths, same as the HTTP surface.
type Deps struct {
	TMDB      *tmdb.Client
	Jikan     *jikan.Client
	ImageBase string
}

// Server wraps an MCP SDK server exposing the gateway's catalog as tools.
// Tool results go through the same projections as the HTTP routes, so a
// tool call and its HTTP counterpart return identical JSON.
type Server struct {
	server  *mcpsdk.Server
	deps    Deps
	project projection.Projector
	logger  *slog.Logger
}

// NewServer creates an MCP server with all gateway tools registered.
func NewServer(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "animovie",
			Version: "1.0.0",
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{
		server:  s,
		deps:    deps,
		project: projection.New(deps.ImageBase),
		logger:  logger,
	}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

func (s *Server) registerTools() {
	s.server.AddTool(searchMoviesTool(), s.handleSearchMovies)
	s.server.AddTool(searchTVTool(), s.handleSearchTV)
	s.server.AddTool(searchAnimeTool(), s.handleSearchAnime)
	s.server.AddTool(trendingMoviesTool(), s.handleTrendingMovies)
	s.server.AddTool(trendingAnimeTool(), s.handleTrendingAnime)
}

// Tool definitions.

func searchMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "search_movies",
		Description: "Search for movies by title. Returns up to 20 matches with TMDB IDs, titles, overviews, image URLs and ratings.",
		InputSchema: querySchema("The movie title to search for"),
	}
}

func searchTVTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "search_tv",
		Description: "Search for TV shows by name. Returns up to 20 matches with TMDB IDs, names, overviews, image URLs and ratings.",
		InputSchema: querySchema("The TV show name to search for"),
	}
}

func searchAnimeTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "search_anime",
		Description: "Search for anime by title via the Jikan API. Returns the raw Jikan search response.",
		InputSchema: querySchema("The anime title to search for"),
	}
}

func trendingMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "trending_movies",
		Description: "Get the movies trending this week or today.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"time_window": map[string]any{
					"type":        "string",
					"description": "Trending window, \"week\" or \"day\" (default \"week\")",
				},
			},
		},
	}
}

func trendingAnimeTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "trending_anime",
		Description: "Get the anime of the current season, up to 20 entries.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func querySchema(desc string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": desc,
			},
		},
		"required": []any{"query"},
	}
}

// Tool handlers — each parses arguments, calls the upstream client, returns
// JSON text content.

func (s *Server) handleSearchMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	query, err := extractStringFromArgs(req.Params.Arguments, "query")
	if err != nil {
		return toolError(err.Error()), nil
	}

	movies, err := s.deps.TMDB.SearchMovies(ctx, query)
	if err != nil {
		return toolError(fmt.Sprintf("tmdb search failed: %v", err)), nil
	}
	return toolJSON(s.project.Movies(movies))
}

func (s *Server) handleSearchTV(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	query, err := extractStringFromArgs(req.Params.Arguments, "query")
	if err != nil {
		return toolError(err.Error()), nil
	}

	shows, err := s.deps.TMDB.SearchTV(ctx, query)
	if err != nil {
		return toolError(fmt.Sprintf("tmdb tv search failed: %v", err)), nil
	}
	return toolJSON(s.project.TVShows(shows))
}

func (s *Server) handleSearchAnime(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	query, err := extractStringFromArgs(req.Params.Arguments, "query")
	if err != nil {
		return toolError(err.Error()), nil
	}

	body, err := s.deps.Jikan.Search(ctx, url.Values{"q": {query}}.Encode())
	if err != nil {
		return toolError(fmt.Sprintf("jikan search failed: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(body)}},
	}, nil
}

func (s *Server) handleTrendingMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	tw := "week"
	if v, err := extractStringFromArgs(req.Params.Arguments, "time_window"); err == nil && v != "" {
		tw = v
	}
	if tw != "week" && tw != "day" {
		return toolError(fmt.Sprintf("invalid time window %q, allowed values are \"week\" and \"day\"", tw)), nil
	}

	movies, err := s.deps.TMDB.TrendingMovies(ctx, tw)
	if err != nil {
		return toolError(fmt.Sprintf("tmdb trending failed: %v", err)), nil
	}
	// Passthrough list, image paths rewritten, matching /trending/movies.
	for _, m := range movies {
		s.project.PrefixImageFields(m)
	}
	if movies == nil {
		movies = []map[string]any{}
	}
	return toolJSON(movies)
}

func (s *Server) handleTrendingAnime(ctx context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	entries, err := s.deps.Jikan.SeasonNow(ctx)
	if err != nil {
		return toolError(fmt.Sprintf("jikan season failed: %v", err)), nil
	}
	return toolJSON(projection.AnimeList(entries))
}

// Helper functions.

// toolJSON marshals v to JSON and returns it as text content.
func toolJSON(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// toolError returns a tool result indicating an error.
func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}

// extractStringFromArgs extracts a string argument from raw JSON arguments.
func extractStringFromArgs(raw []byte, key string) (string, error) {
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	val, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", key, val)
	}
	return str, nil
}
