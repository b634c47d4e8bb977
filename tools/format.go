package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/boezzz/ridewithgps-mcp/rwgps"
)

// unknown is the placeholder for missing fields. The upstream API makes a
// legitimately-zero measurement indistinguishable from "not provided", so
// zero and absent numerics render identically.
const unknown = "Unknown"

const timestampLayout = "Jan 2, 2006 at 3:04 PM"

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

// formatDistance renders meters as kilometers with two decimal places.
func formatDistance(meters float64) string {
	if meters <= 0 {
		return unknown
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

// formatElevation renders meters as whole meters.
func formatElevation(meters float64) string {
	if meters <= 0 {
		return unknown
	}
	return fmt.Sprintf("%.0f m", meters)
}

// formatDuration renders seconds as "Hh Mm" using floor division.
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return unknown
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// formatMetric renders a physiological metric with its unit.
func formatMetric(value float64, unit string) string {
	if value <= 0 {
		return unknown
	}
	return fmt.Sprintf("%.0f %s", value, unit)
}

// formatTimestamp parses an RFC3339 timestamp and renders it in a human
// layout, falling back to the raw string if parsing fails.
func formatTimestamp(ts string) string {
	if ts == "" {
		return unknown
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format(timestampLayout)
}

// formatLocation joins the non-empty geographic fields.
func formatLocation(locality, administrativeArea, countryCode string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{locality, administrativeArea, countryCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return unknown
	}
	return strings.Join(parts, ", ")
}

// writePaginationFooter appends the total record count and, when the
// upstream reports another page, a hint that more results exist.
func writePaginationFooter(b *strings.Builder, meta rwgps.Meta, noun string) {
	p := meta.Pagination
	if p == nil {
		return
	}
	fmt.Fprintf(b, "\nTotal: %d %s\n", p.RecordCount, noun)
	if p.NextPageURL != "" {
		fmt.Fprintf(b, "More %s are available on the next page.\n", noun)
	}
}

func formatRoutesList(resp *rwgps.RoutesResponse) string {
	if len(resp.Routes) == 0 {
		return "No routes found.\n"
	}

	var b strings.Builder
	b.WriteString("Routes:\n\n")
	for i, r := range resp.Routes {
		fmt.Fprintf(&b, "%d. %s (ID: %d)\n", i+1, orUnknown(r.Name), r.ID)
		fmt.Fprintf(&b, "   Location: %s\n", formatLocation(r.Locality, r.AdministrativeArea, r.CountryCode))
		fmt.Fprintf(&b, "   Distance: %s | Elevation Gain: %s | Elevation Loss: %s\n",
			formatDistance(r.Distance), formatElevation(r.ElevationGain), formatElevation(r.ElevationLoss))
		fmt.Fprintf(&b, "   Updated: %s\n", formatTimestamp(r.UpdatedAt))
	}
	writePaginationFooter(&b, resp.Meta, "routes")
	return b.String()
}

func formatRouteDetails(r *rwgps.Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Route: %s (ID: %d)\n", orUnknown(r.Name), r.ID)
	fmt.Fprintf(&b, "Description: %s\n", orUnknown(r.Description))
	fmt.Fprintf(&b, "Location: %s\n", formatLocation(r.Locality, r.AdministrativeArea, r.CountryCode))
	fmt.Fprintf(&b, "Distance: %s\n", formatDistance(r.Distance))
	fmt.Fprintf(&b, "Elevation Gain: %s | Elevation Loss: %s\n",
		formatElevation(r.ElevationGain), formatElevation(r.ElevationLoss))
	fmt.Fprintf(&b, "Created: %s\n", formatTimestamp(r.CreatedAt))
	fmt.Fprintf(&b, "Updated: %s\n", formatTimestamp(r.UpdatedAt))

	fmt.Fprintf(&b, "Track Points: %d\n", len(r.TrackPoints))

	if len(r.CoursePoints) > 0 {
		fmt.Fprintf(&b, "Course Points (%d):\n", len(r.CoursePoints))
		for i, cp := range r.CoursePoints {
			fmt.Fprintf(&b, "  %d. %s - %s (%.5f, %.5f)\n",
				i+1, orUnknown(cp.Note), formatDistance(cp.Distance), cp.Lat, cp.Lng)
		}
	}

	if len(r.PointsOfInterest) > 0 {
		fmt.Fprintf(&b, "Points of Interest (%d):\n", len(r.PointsOfInterest))
		for i, poi := range r.PointsOfInterest {
			fmt.Fprintf(&b, "  %d. %s (ID: %d)\n", i+1, orUnknown(poi.Name), poi.ID)
			if poi.Description != "" {
				fmt.Fprintf(&b, "     %s\n", poi.Description)
			}
		}
	}

	return b.String()
}

func formatTripsList(resp *rwgps.TripsResponse) string {
	if len(resp.Trips) == 0 {
		return "No trips found.\n"
	}

	var b strings.Builder
	b.WriteString("Trips:\n\n")
	for i, t := range resp.Trips {
		fmt.Fprintf(&b, "%d. %s (ID: %d)\n", i+1, orUnknown(t.Name), t.ID)
		fmt.Fprintf(&b, "   Activity: %s\n", orUnknown(t.ActivityType))
		fmt.Fprintf(&b, "   Location: %s\n", formatLocation(t.Locality, t.AdministrativeArea, t.CountryCode))
		fmt.Fprintf(&b, "   Distance: %s | Duration: %s\n",
			formatDistance(t.Distance), formatDuration(t.Duration))
		fmt.Fprintf(&b, "   Updated: %s\n", formatTimestamp(t.UpdatedAt))
	}
	writePaginationFooter(&b, resp.Meta, "trips")
	return b.String()
}

func formatTripDetails(t *rwgps.Trip) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip: %s (ID: %d)\n", orUnknown(t.Name), t.ID)
	fmt.Fprintf(&b, "Description: %s\n", orUnknown(t.Description))
	fmt.Fprintf(&b, "Activity: %s\n", orUnknown(t.ActivityType))
	fmt.Fprintf(&b, "Location: %s\n", formatLocation(t.Locality, t.AdministrativeArea, t.CountryCode))
	fmt.Fprintf(&b, "Departed: %s\n", formatTimestamp(t.DepartedAt))
	fmt.Fprintf(&b, "Distance: %s\n", formatDistance(t.Distance))
	fmt.Fprintf(&b, "Elevation Gain: %s | Elevation Loss: %s\n",
		formatElevation(t.ElevationGain), formatElevation(t.ElevationLoss))
	fmt.Fprintf(&b, "Duration: %s | Moving Time: %s\n",
		formatDuration(t.Duration), formatDuration(t.MovingTime))
	fmt.Fprintf(&b, "Avg Heart Rate: %s | Max Heart Rate: %s\n",
		formatMetric(t.AvgHR, "bpm"), formatMetric(t.MaxHR, "bpm"))
	fmt.Fprintf(&b, "Avg Power: %s | Avg Cadence: %s\n",
		formatMetric(t.AvgWatts, "W"), formatMetric(t.AvgCadence, "rpm"))
	fmt.Fprintf(&b, "Calories: %s\n", formatMetric(t.Calories, "kcal"))
	fmt.Fprintf(&b, "Created: %s\n", formatTimestamp(t.CreatedAt))
	fmt.Fprintf(&b, "Updated: %s\n", formatTimestamp(t.UpdatedAt))
	return b.String()
}

func formatEventsList(resp *rwgps.EventsResponse) string {
	if len(resp.Events) == 0 {
		return "No events found.\n"
	}

	var b strings.Builder
	b.WriteString("Events:\n\n")
	for i, e := range resp.Events {
		fmt.Fprintf(&b, "%d. %s (ID: %d)\n", i+1, orUnknown(e.Name), e.ID)
		fmt.Fprintf(&b, "   Starts: %s | Ends: %s\n",
			formatTimestamp(e.StartsAt), formatTimestamp(e.EndsAt))
		fmt.Fprintf(&b, "   Created: %s\n", formatTimestamp(e.CreatedAt))
	}
	writePaginationFooter(&b, resp.Meta, "events")
	return b.String()
}

func formatEventDetails(e *rwgps.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s (ID: %d)\n", orUnknown(e.Name), e.ID)
	fmt.Fprintf(&b, "Description: %s\n", orUnknown(e.Description))
	fmt.Fprintf(&b, "Starts: %s | Ends: %s\n",
		formatTimestamp(e.StartsAt), formatTimestamp(e.EndsAt))
	fmt.Fprintf(&b, "Created: %s\n", formatTimestamp(e.CreatedAt))
	fmt.Fprintf(&b, "Updated: %s\n", formatTimestamp(e.UpdatedAt))

	if len(e.Routes) > 0 {
		fmt.Fprintf(&b, "Routes (%d):\n", len(e.Routes))
		for i, r := range e.Routes {
			fmt.Fprintf(&b, "  %d. %s (ID: %d) - %s\n",
				i+1, orUnknown(r.Name), r.ID, formatDistance(r.Distance))
		}
	}

	return b.String()
}

func formatUser(u *rwgps.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User: %s (ID: %d)\n", orUnknown(u.Name), u.ID)
	fmt.Fprintf(&b, "Email: %s\n", orUnknown(u.Email))
	fmt.Fprintf(&b, "Created: %s\n", formatTimestamp(u.CreatedAt))
	fmt.Fprintf(&b, "Updated: %s\n", formatTimestamp(u.UpdatedAt))
	return b.String()
}

func formatSync(resp *rwgps.SyncResponse) string {
	var b strings.Builder

	if len(resp.Items) == 0 {
		b.WriteString("No changes since the given timestamp.\n")
	} else {
		fmt.Fprintf(&b, "Sync Items (%d):\n\n", len(resp.Items))
		for i, item := range resp.Items {
			fmt.Fprintf(&b, "%d. %s %s %d\n",
				i+1, strings.ToUpper(item.Action), item.ItemType, item.ItemID)
			fmt.Fprintf(&b, "   User: %d | At: %s\n", item.ItemUserID, formatTimestamp(item.Datetime))
			if item.CollectionTitle != "" {
				fmt.Fprintf(&b, "   Collection: %s\n", item.CollectionTitle)
			}
		}
	}

	if ns := resp.Meta.NextSync; ns != nil {
		cursor := ns.Since
		if cursor == "" {
			cursor = ns.URL
		}
		if cursor != "" {
			fmt.Fprintf(&b, "\nNext sync cursor: %s\n", cursor)
		}
	}

	return b.String()
}
