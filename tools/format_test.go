package tools

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boezzz/ridewithgps-mcp/rwgps"
)

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "24.14 km", formatDistance(24140))
	assert.Equal(t, "0.50 km", formatDistance(500))
	assert.Equal(t, unknown, formatDistance(0))
	assert.Equal(t, unknown, formatDistance(-1))
}

func TestFormatElevation(t *testing.T) {
	assert.Equal(t, "210 m", formatElevation(210.4))
	assert.Equal(t, unknown, formatElevation(0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1h 1m", formatDuration(3661))
	assert.Equal(t, "0h 59m", formatDuration(3599))
	assert.Equal(t, "2h 0m", formatDuration(7200))
	assert.Equal(t, unknown, formatDuration(0))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "Jan 2, 2024 at 3:04 PM", formatTimestamp("2024-01-02T15:04:05Z"))
	// Unparseable values fall back to the raw string.
	assert.Equal(t, "yesterday", formatTimestamp("yesterday"))
	assert.Equal(t, unknown, formatTimestamp(""))
}

func TestFormatLocation(t *testing.T) {
	assert.Equal(t, "Brooklyn, NY, US", formatLocation("Brooklyn", "NY", "US"))
	assert.Equal(t, "NY, US", formatLocation("", "NY", "US"))
	assert.Equal(t, unknown, formatLocation("", "", ""))
}

func routesFixture(n int, nextPage bool) *rwgps.RoutesResponse {
	resp := &rwgps.RoutesResponse{
		Meta: rwgps.Meta{Pagination: &rwgps.Pagination{RecordCount: 25}},
	}
	for i := 1; i <= n; i++ {
		resp.Routes = append(resp.Routes, rwgps.RouteSummary{
			ID:            100 + i,
			Name:          fmt.Sprintf("Route %d", i),
			Locality:      "Brooklyn",
			CountryCode:   "US",
			Distance:      float64(i) * 1000,
			ElevationGain: 100,
			UpdatedAt:     "2024-01-02T15:04:05Z",
		})
	}
	if nextPage {
		resp.Meta.Pagination.NextPageURL = "https://example.com/routes.json?page=2"
	}
	return resp
}

func TestFormatRoutesListEntriesAndTotal(t *testing.T) {
	out := formatRoutesList(routesFixture(3, false))

	for i := 1; i <= 3; i++ {
		assert.Contains(t, out, fmt.Sprintf("%d. Route %d (ID: %d)", i, i, 100+i))
	}
	assert.NotContains(t, out, "4. ")
	assert.Contains(t, out, "Total: 25 routes")
	assert.NotContains(t, out, "next page")
}

func TestFormatRoutesListNextPageHint(t *testing.T) {
	out := formatRoutesList(routesFixture(1, true))
	assert.Contains(t, out, "More routes are available on the next page.")
}

func TestFormatRoutesListEmpty(t *testing.T) {
	out := formatRoutesList(&rwgps.RoutesResponse{})
	assert.Equal(t, "No routes found.\n", out)
}

func TestFormatIsIdempotent(t *testing.T) {
	fixture := routesFixture(5, true)
	first := formatRoutesList(fixture)
	second := formatRoutesList(fixture)
	assert.Equal(t, first, second, "formatting the same fixture twice must be byte-identical")
}

func TestFormatRouteZeroAndAbsentMerge(t *testing.T) {
	// A zero measurement and an absent one render identically. The upstream
	// API makes them indistinguishable; this pins the documented behavior.
	zero := &rwgps.Route{RouteSummary: rwgps.RouteSummary{
		ID: 1, Name: "Flat", Distance: 0, ElevationGain: 0, ElevationLoss: 0,
	}}
	absent := &rwgps.Route{RouteSummary: rwgps.RouteSummary{
		ID: 1, Name: "Flat",
	}}

	assert.Equal(t, formatRouteDetails(zero), formatRouteDetails(absent))
	assert.Contains(t, formatRouteDetails(zero), "Distance: "+unknown)
}

func TestFormatRouteDetailsSections(t *testing.T) {
	route := &rwgps.Route{
		RouteSummary: rwgps.RouteSummary{ID: 42, Name: "Morning Loop", Distance: 24140},
		TrackPoints:  []rwgps.TrackPoint{{Lng: -74, Lat: 40.7}, {Lng: -74.1, Lat: 40.8}},
		CoursePoints: []rwgps.CoursePoint{
			{Note: "Turn left onto Main St", Distance: 1250, Lat: 40.7128, Lng: -74.006},
			{Note: "Turn right onto Oak Ave", Distance: 5400, Lat: 40.72, Lng: -74.01},
			{Note: "Arrive at finish", Distance: 24140, Lat: 40.73, Lng: -74.02},
		},
		PointsOfInterest: []rwgps.PointOfInterest{
			{ID: 9, Name: "Water fountain"},
			{ID: 10, Name: "Scenic overlook", Description: "Great view of the bay"},
		},
	}

	out := formatRouteDetails(route)

	assert.Contains(t, out, "Route: Morning Loop (ID: 42)")
	assert.Contains(t, out, "Track Points: 2")
	assert.Contains(t, out, "Course Points (3):")
	assert.Contains(t, out, "Points of Interest (2):")

	// Entries appear in input order.
	assert.Contains(t, out, "  1. Turn left onto Main St - 1.25 km (40.71280, -74.00600)")
	assert.Contains(t, out, "  2. Turn right onto Oak Ave")
	assert.Contains(t, out, "  3. Arrive at finish")
	assert.Less(t, strings.Index(out, "Turn left"), strings.Index(out, "Turn right"))
	assert.Contains(t, out, "  1. Water fountain (ID: 9)")
	assert.Contains(t, out, "  2. Scenic overlook (ID: 10)")
	assert.Contains(t, out, "Great view of the bay")
}

func TestFormatTripDetailsMetrics(t *testing.T) {
	trip := &rwgps.Trip{
		TripSummary: rwgps.TripSummary{
			ID: 7, Name: "Sunday Ride", ActivityType: "cycling",
			Distance: 50000, Duration: 7380, MovingTime: 6900,
		},
		AvgHR: 142, AvgWatts: 180, Calories: 1200,
	}

	out := formatTripDetails(trip)

	assert.Contains(t, out, "Trip: Sunday Ride (ID: 7)")
	assert.Contains(t, out, "Activity: cycling")
	assert.Contains(t, out, "Duration: 2h 3m | Moving Time: 1h 55m")
	assert.Contains(t, out, "Avg Heart Rate: 142 bpm")
	assert.Contains(t, out, "Max Heart Rate: "+unknown)
	assert.Contains(t, out, "Avg Power: 180 W")
	assert.Contains(t, out, "Calories: 1200 kcal")
}

func TestFormatEventDetailsRoutes(t *testing.T) {
	event := &rwgps.Event{
		EventSummary: rwgps.EventSummary{ID: 3, Name: "Century Day", StartsAt: "2024-06-01T08:00:00Z"},
		Routes: []rwgps.RouteSummary{
			{ID: 1, Name: "Full Century", Distance: 160000},
			{ID: 2, Name: "Metric Century", Distance: 100000},
		},
	}

	out := formatEventDetails(event)

	assert.Contains(t, out, "Event: Century Day (ID: 3)")
	assert.Contains(t, out, "Routes (2):")
	assert.Contains(t, out, "  1. Full Century (ID: 1) - 160.00 km")
	assert.Contains(t, out, "  2. Metric Century (ID: 2) - 100.00 km")
}

func TestFormatUser(t *testing.T) {
	out := formatUser(&rwgps.User{ID: 5, Name: "Jane Doe", Email: "jane@example.com"})

	assert.Contains(t, out, "User: Jane Doe (ID: 5)")
	assert.Contains(t, out, "Email: jane@example.com")
	assert.Contains(t, out, "Created: "+unknown)
}

func TestFormatSync(t *testing.T) {
	resp := &rwgps.SyncResponse{
		Items: []rwgps.SyncItem{
			{Action: "create", ItemType: "route", ItemID: 10, ItemUserID: 7, Datetime: "2024-01-02T00:00:00Z"},
			{Action: "delete", ItemType: "trip", ItemID: 11, ItemUserID: 7, Datetime: "2024-01-03T00:00:00Z", CollectionTitle: "Favorites"},
		},
		Meta: rwgps.Meta{NextSync: &rwgps.NextSync{Since: "2024-01-03T00:00:00Z"}},
	}

	out := formatSync(resp)

	assert.Contains(t, out, "Sync Items (2):")
	assert.Contains(t, out, "1. CREATE route 10")
	assert.Contains(t, out, "2. DELETE trip 11")
	assert.Contains(t, out, "User: 7")
	assert.Contains(t, out, "Collection: Favorites")
	assert.Contains(t, out, "Next sync cursor: 2024-01-03T00:00:00Z")
	assert.NotContains(t, out, "3. ")
}

func TestFormatSyncEmpty(t *testing.T) {
	out := formatSync(&rwgps.SyncResponse{})
	assert.Contains(t, out, "No changes since the given timestamp.")
	assert.NotContains(t, out, "Next sync cursor")
}

func TestFormatSyncCursorFallsBackToURL(t *testing.T) {
	resp := &rwgps.SyncResponse{
		Meta: rwgps.Meta{NextSync: &rwgps.NextSync{URL: "https://example.com/sync.json?since=x"}},
	}
	out := formatSync(resp)
	assert.Contains(t, out, "Next sync cursor: https://example.com/sync.json?since=x")
}

func TestFormatEventsListFooter(t *testing.T) {
	resp := &rwgps.EventsResponse{
		Events: []rwgps.EventSummary{{ID: 1, Name: "Spring Classic"}},
		Meta:   rwgps.Meta{Pagination: &rwgps.Pagination{RecordCount: 1}},
	}
	out := formatEventsList(resp)
	require.Contains(t, out, "1. Spring Classic (ID: 1)")
	assert.Contains(t, out, "Total: 1 events")
}
