package tools

import (
	"context"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boezzz/ridewithgps-mcp/rwgps"
)

const (
	serverName    = "ridewithgps"
	serverVersion = "1.0.0"
)

// Server wraps an MCP server with the RideWithGPS tool catalog.
type Server struct {
	client   *rwgps.Client
	server   *mcp.Server
	logger   *slog.Logger
	disabled map[string]bool
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the logger for tool-level diagnostics.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithDisabledTools removes the named tools from the catalog.
func WithDisabledTools(names []string) ServerOption {
	return func(s *Server) {
		for _, name := range names {
			s.disabled[name] = true
		}
	}
}

// NewServer creates an MCP server with all enabled tools registered.
func NewServer(client *rwgps.Client, opts ...ServerOption) *Server {
	s := &Server{
		client:   client,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		disabled: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)
	s.registerTools()

	return s
}

// register adds one tool to the underlying MCP server unless it is disabled.
// A free function because Go methods cannot be generic.
func register[In any](s *Server, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, any]) {
	if s.disabled[tool.Name] {
		s.logger.Debug("tool disabled by configuration", "tool", tool.Name)
		return
	}
	mcp.AddTool(s.server, tool, handler)
}

// Run serves MCP requests over the given transport until ctx is cancelled
// or the transport closes.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}
