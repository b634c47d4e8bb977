// Package tools exposes the RideWithGPS API as a fixed catalog of MCP tools.
// Each tool validates its arguments, delegates to exactly one client method,
// and renders the result as a plain-text report. Failures of any kind are
// contained here and returned as tool error results; nothing escapes to the
// protocol layer.
package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boezzz/ridewithgps-mcp/rwgps"
)

type listArgs struct {
	Page int `json:"page,omitempty"`
}

type detailArgs struct {
	ID int `json:"id"`
}

type syncArgs struct {
	Since  string `json:"since"`
	Assets string `json:"assets,omitempty"`
}

// validationError marks malformed tool input, rejected before any network
// call is made.
type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return "invalid arguments: " + e.msg
}

func ptr[T any](v T) *T { return &v }

func pageSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"page": {
				Type:        "integer",
				Minimum:     ptr(1.0),
				Description: "1-based page number; omit for the first page",
			},
		},
	}
}

func idSchema(noun string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id": {
				Type:        "integer",
				Minimum:     ptr(1.0),
				Description: fmt.Sprintf("Numeric %s identifier", noun),
			},
		},
		Required: []string{"id"},
	}
}

func emptySchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

func syncSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"since": {
				Type:        "string",
				Description: "ISO-8601 timestamp to sync changes from, e.g. 2024-01-01T00:00:00Z",
			},
			"assets": {
				Type:        "string",
				Description: "Optional comma-separated subset of: routes, trips. Omit for all asset types.",
			},
		},
		Required: []string{"since"},
	}
}

func validatePage(page int) error {
	if page < 0 {
		return &validationError{fmt.Sprintf("page must be >= 1, got %d", page)}
	}
	return nil
}

func validateID(id int) error {
	if id < 1 {
		return &validationError{fmt.Sprintf("id must be >= 1, got %d", id)}
	}
	return nil
}

// parseAssets validates the comma-joined asset filter against the asset
// types the sync endpoint supports.
func parseAssets(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	assets := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch p {
		case "routes", "trips":
			assets = append(assets, p)
		default:
			return nil, &validationError{fmt.Sprintf("assets must be a comma-separated subset of routes,trips; got %q", p)}
		}
	}
	return assets, nil
}

// textResult wraps a rendered report as a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult classifies a failure and wraps it as a tool error result.
// Validation, transport, and upstream failures each get a distinct,
// single-line description.
func errorResult(err error) *mcp.CallToolResult {
	var (
		valErr       *validationError
		apiErr       *rwgps.APIError
		transportErr *rwgps.TransportError
	)

	var msg string
	switch {
	case errors.As(err, &valErr):
		msg = valErr.Error()
	case errors.As(err, &apiErr):
		msg = apiErr.Error()
	case errors.As(err, &transportErr):
		msg = transportErr.Error()
	default:
		msg = fmt.Sprintf("unexpected error: %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func (s *Server) handleGetRoutes(ctx context.Context, _ *mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, any, error) {
	if err := validatePage(args.Page); err != nil {
		return errorResult(err), nil, nil
	}
	resp, err := s.client.ListRoutes(ctx, args.Page)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(formatRoutesList(resp)), nil, nil
}

func (s *Server) handleGetRouteDetails(ctx context.Context, _ *mcp.CallToolRequest, args detailArgs) (*mcp.CallToolResult, any, error) {
	if err := validateID(args.ID); err != nil {
		return errorResult(err), nil, nil
	}
	route, err := s.client.GetRoute(ctx, args.ID)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(formatRouteDetails(route)), nil, nil
}

func (s *Server) handleGetTrips(ctx context.Context, _ *mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, any, error) {
	if err := validatePage(args.Page); err != nil {
		return errorResult(err), nil, nil
	}
	resp, err := s.client.ListTrips(ctx, args.Page)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(formatTripsList(resp)), nil, nil
}

func (s *Server) handleGetTripDetails(ctx context.Context, _ *mcp.CallToolRequest, args detailArgs) (*mcp.CallToolResult, any, error) {
	if err := validateID(args.ID); err != nil {
		return errorResult(err), nil, nil
	}
	trip, err := s.client.GetTrip(ctx, args.ID)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(formatTripDetails(trip)), nil, nil
}

func (s *Server) handleGetEvents(ctx context.Context, _ *mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, any, error) {
	if err := validatePage(args.Page); err != nil {
		return errorResult(err), nil, nil
	}
	resp, err := s.client.ListEvents(ctx, args.Page)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(formatEventsList(resp)), nil, nil
}

func (s *Server) handleGetEventDetails(ctx context.Context, _ *mcp.CallToolRequest, args detailArgs) (*mcp.CallToolResult, any, error) {
	if err := validateID(args.ID); err != nil {
		return errorResult(err), nil, nil
	}
	event, err := s.client.GetEvent(ctx, args.ID)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(formatEventDetails(event)), nil, nil
}

func (s *Server) handleGetCurrentUser(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	user, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(formatUser(user)), nil, nil
}

func (s *Server) handleSyncUserData(ctx context.Context, _ *mcp.CallToolRequest, args syncArgs) (*mcp.CallToolResult, any, error) {
	if args.Since == "" {
		return errorResult(&validationError{"since is required"}), nil, nil
	}
	if _, err := time.Parse(time.RFC3339, args.Since); err != nil {
		return errorResult(&validationError{fmt.Sprintf("since must be an ISO-8601 timestamp, got %q", args.Since)}), nil, nil
	}
	assets, err := parseAssets(args.Assets)
	if err != nil {
		return errorResult(err), nil, nil
	}

	resp, err := s.client.Sync(ctx, args.Since, assets)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(formatSync(resp)), nil, nil
}

// registerTools wires the fixed tool catalog onto the MCP server, skipping
// any tool the configuration disables.
func (s *Server) registerTools() {
	register(s, &mcp.Tool{
		Name:        "get_routes",
		Title:       "List Routes",
		Description: "List the user's planned cycling routes, most recently updated first.",
		InputSchema: pageSchema(),
	}, s.handleGetRoutes)

	register(s, &mcp.Tool{
		Name:        "get_route_details",
		Title:       "Route Details",
		Description: "Get full details for one route, including track points, course points, and points of interest.",
		InputSchema: idSchema("route"),
	}, s.handleGetRouteDetails)

	register(s, &mcp.Tool{
		Name:        "get_trips",
		Title:       "List Trips",
		Description: "List the user's recorded trips, most recently updated first.",
		InputSchema: pageSchema(),
	}, s.handleGetTrips)

	register(s, &mcp.Tool{
		Name:        "get_trip_details",
		Title:       "Trip Details",
		Description: "Get full details for one trip, including duration, moving time, and physiological metrics.",
		InputSchema: idSchema("trip"),
	}, s.handleGetTripDetails)

	register(s, &mcp.Tool{
		Name:        "get_current_user",
		Title:       "Current User",
		Description: "Get the authenticated user's profile.",
		InputSchema: emptySchema(),
	}, s.handleGetCurrentUser)

	register(s, &mcp.Tool{
		Name:        "get_events",
		Title:       "List Events",
		Description: "List the user's events, most recently created first.",
		InputSchema: pageSchema(),
	}, s.handleGetEvents)

	register(s, &mcp.Tool{
		Name:        "get_event_details",
		Title:       "Event Details",
		Description: "Get full details for one event, including its associated routes.",
		InputSchema: idSchema("event"),
	}, s.handleGetEventDetails)

	register(s, &mcp.Tool{
		Name:        "sync_user_data",
		Title:       "Sync User Data",
		Description: "Get incremental changes to the user's routes and trips since a given timestamp.",
		InputSchema: syncSchema(),
	}, s.handleSyncUserData)
}
