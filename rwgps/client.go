// Package rwgps is a typed client for the RideWithGPS REST API. It covers
// the read-only surface this project needs: route, trip, and event lists and
// details, the current user's profile, and the incremental sync feed.
package rwgps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the production RideWithGPS API endpoint.
const DefaultBaseURL = "https://ridewithgps.com/api/v1"

// maxErrorBody bounds how much of a non-2xx response body is read.
const maxErrorBody = 64 * 1024

// Client issues authenticated requests against the RideWithGPS API. It is
// stateless across calls apart from the held credentials and base URL, and
// is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint. Useful for tests and staging.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client, e.g. one built with
// retryablehttp. The caller's client is not mutated; its transport is
// wrapped to attach credential headers.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger for request-level debug output.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client with the given credentials. Both credentials
// are required; the server will not accept requests without them.
func NewClient(apiKey, authToken string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("rwgps: API key is required")
	}
	if authToken == "" {
		return nil, errors.New("rwgps: auth token is required")
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimSuffix(c.baseURL, "/")

	// Shallow-copy the HTTP client so wrapping its transport doesn't leak
	// credential headers into the caller's client.
	httpClient := *c.httpClient
	httpClient.Transport = &headerTransport{
		base:      httpClient.Transport,
		apiKey:    apiKey,
		authToken: authToken,
	}
	c.httpClient = &httpClient

	return c, nil
}

// ListRoutes returns one page of the user's routes, most recently updated
// first. page <= 0 omits the page parameter and the server default applies.
func (c *Client) ListRoutes(ctx context.Context, page int) (*RoutesResponse, error) {
	var out RoutesResponse
	if err := c.get(ctx, "/routes.json", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRoute returns the full detail view of a route, including track points,
// course points, and points of interest.
func (c *Client) GetRoute(ctx context.Context, id int) (*Route, error) {
	var out RouteResponse
	if err := c.get(ctx, fmt.Sprintf("/routes/%d.json", id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Route, nil
}

// ListTrips returns one page of the user's trips, most recently updated
// first. page <= 0 omits the page parameter.
func (c *Client) ListTrips(ctx context.Context, page int) (*TripsResponse, error) {
	var out TripsResponse
	if err := c.get(ctx, "/trips.json", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTrip returns the full detail view of a trip.
func (c *Client) GetTrip(ctx context.Context, id int) (*Trip, error) {
	var out TripResponse
	if err := c.get(ctx, fmt.Sprintf("/trips/%d.json", id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Trip, nil
}

// ListEvents returns one page of the user's events, most recently created
// first. page <= 0 omits the page parameter.
func (c *Client) ListEvents(ctx context.Context, page int) (*EventsResponse, error) {
	var out EventsResponse
	if err := c.get(ctx, "/events.json", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEvent returns the full detail view of an event, including its
// associated routes.
func (c *Client) GetEvent(ctx context.Context, id int) (*Event, error) {
	var out EventResponse
	if err := c.get(ctx, fmt.Sprintf("/events/%d.json", id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Event, nil
}

// GetCurrentUser returns the profile of the authenticated user.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var out UserResponse
	if err := c.get(ctx, "/users/current.json", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Sync returns the change records since the given ISO-8601 timestamp, in
// occurrence order, plus a continuation cursor. assets optionally restricts
// the feed to a subset of {routes, trips}; empty means everything.
func (c *Client) Sync(ctx context.Context, since string, assets []string) (*SyncResponse, error) {
	query := url.Values{}
	query.Set("since", since)
	if len(assets) > 0 {
		query.Set("assets", strings.Join(assets, ","))
	}

	var out SyncResponse
	if err := c.get(ctx, "/sync.json", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get performs a single GET round trip and decodes the JSON body into v.
// Transport failures become *TransportError, non-2xx responses *APIError.
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	c.logger.Debug("requesting", "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       bytes.TrimSpace(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func pageQuery(page int) url.Values {
	if page <= 0 {
		return nil
	}
	return url.Values{"page": []string{strconv.Itoa(page)}}
}
