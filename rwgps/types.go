package rwgps

// The RideWithGPS API returns two views of most resources: a summary view in
// list responses and a full view in detail responses. Detail types embed
// their summary counterparts so the field-subset relationship is structural
// rather than implied. Numeric fields the API may omit are plain values;
// the upstream makes a legitimate zero indistinguishable from "not provided",
// and the formatters treat them identically.

// Pagination wraps list responses with the total record count and, when more
// pages exist, a URL for the next page. An empty NextPageURL means the caller
// has reached the final page.
type Pagination struct {
	RecordCount int    `json:"record_count"`
	PageCount   int    `json:"page_count,omitempty"`
	NextPageURL string `json:"next_page_url,omitempty"`
}

// NextSync is the continuation cursor returned by the sync endpoint.
type NextSync struct {
	Since string `json:"since,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Meta carries response-level metadata.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
	NextSync   *NextSync   `json:"next_sync,omitempty"`
}

// RouteSummary is the list view of a route.
type RouteSummary struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	Locality           string  `json:"locality,omitempty"`
	AdministrativeArea string  `json:"administrative_area,omitempty"`
	CountryCode        string  `json:"country_code,omitempty"`
	Distance           float64 `json:"distance,omitempty"`
	ElevationGain      float64 `json:"elevation_gain,omitempty"`
	ElevationLoss      float64 `json:"elevation_loss,omitempty"`
	SWLat              float64 `json:"sw_lat,omitempty"`
	SWLng              float64 `json:"sw_lng,omitempty"`
	NELat              float64 `json:"ne_lat,omitempty"`
	NELng              float64 `json:"ne_lng,omitempty"`
	CreatedAt          string  `json:"created_at,omitempty"`
	UpdatedAt          string  `json:"updated_at,omitempty"`
}

// TrackPoint is one recorded point along a route's track.
type TrackPoint struct {
	Lng       float64 `json:"x"`
	Lat       float64 `json:"y"`
	Elevation float64 `json:"e,omitempty"`
	Distance  float64 `json:"d,omitempty"`
}

// CoursePoint is a turn instruction or cue along a route.
type CoursePoint struct {
	Note     string  `json:"n"`
	Type     string  `json:"t,omitempty"`
	Distance float64 `json:"d,omitempty"`
	Lng      float64 `json:"x"`
	Lat      float64 `json:"y"`
}

// PointOfInterest is a named point attached to a route.
type PointOfInterest struct {
	ID          int     `json:"id"`
	Name        string  `json:"n"`
	Description string  `json:"d,omitempty"`
	Type        string  `json:"t,omitempty"`
	Lng         float64 `json:"lng"`
	Lat         float64 `json:"lat"`
}

// Route is the detail view of a route: the summary fields plus the nested
// collections that list responses omit for bandwidth.
type Route struct {
	RouteSummary
	TrackPoints      []TrackPoint      `json:"track_points,omitempty"`
	CoursePoints     []CoursePoint     `json:"course_points,omitempty"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest,omitempty"`
}

// TripSummary is the list view of a trip.
type TripSummary struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	ActivityType       string  `json:"activity_type,omitempty"`
	Locality           string  `json:"locality,omitempty"`
	AdministrativeArea string  `json:"administrative_area,omitempty"`
	CountryCode        string  `json:"country_code,omitempty"`
	Distance           float64 `json:"distance,omitempty"`
	ElevationGain      float64 `json:"elevation_gain,omitempty"`
	ElevationLoss      float64 `json:"elevation_loss,omitempty"`
	Duration           int     `json:"duration,omitempty"`
	MovingTime         int     `json:"moving_time,omitempty"`
	DepartedAt         string  `json:"departed_at,omitempty"`
	CreatedAt          string  `json:"created_at,omitempty"`
	UpdatedAt          string  `json:"updated_at,omitempty"`
}

// Trip is the detail view of a trip: summary fields plus coordinate bounds
// and the optional physiological metrics.
type Trip struct {
	TripSummary
	SWLat      float64 `json:"sw_lat,omitempty"`
	SWLng      float64 `json:"sw_lng,omitempty"`
	NELat      float64 `json:"ne_lat,omitempty"`
	NELng      float64 `json:"ne_lng,omitempty"`
	AvgHR      float64 `json:"avg_hr,omitempty"`
	MaxHR      float64 `json:"max_hr,omitempty"`
	AvgWatts   float64 `json:"avg_watts,omitempty"`
	AvgCadence float64 `json:"avg_cad,omitempty"`
	Calories   float64 `json:"calories,omitempty"`
}

// EventSummary is the list view of an event.
type EventSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc,omitempty"`
	StartsAt    string `json:"starts_at,omitempty"`
	EndsAt      string `json:"ends_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Event is the detail view of an event, including the routes associated with
// it (summary fields only).
type Event struct {
	EventSummary
	Routes []RouteSummary `json:"routes,omitempty"`
}

// User is the authenticated user's profile.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SyncItem is one change record from the incremental sync endpoint.
type SyncItem struct {
	Action          string `json:"action"`
	ItemType        string `json:"item_type"`
	ItemID          int    `json:"item_id"`
	ItemUserID      int    `json:"item_user_id,omitempty"`
	Datetime        string `json:"datetime,omitempty"`
	CollectionTitle string `json:"collection_title,omitempty"`
}

// Response envelopes. The API nests each resource under a key named after it.
type (
	// RoutesResponse is the envelope for GET /routes.json.
	RoutesResponse struct {
		Routes []RouteSummary `json:"routes"`
		Meta   Meta           `json:"meta"`
	}

	// RouteResponse is the envelope for GET /routes/{id}.json.
	RouteResponse struct {
		Route Route `json:"route"`
	}

	// TripsResponse is the envelope for GET /trips.json.
	TripsResponse struct {
		Trips []TripSummary `json:"trips"`
		Meta  Meta          `json:"meta"`
	}

	// TripResponse is the envelope for GET /trips/{id}.json.
	TripResponse struct {
		Trip Trip `json:"trip"`
	}

	// EventsResponse is the envelope for GET /events.json.
	EventsResponse struct {
		Events []EventSummary `json:"events"`
		Meta   Meta           `json:"meta"`
	}

	// EventResponse is the envelope for GET /events/{id}.json.
	EventResponse struct {
		Event Event `json:"event"`
	}

	// UserResponse is the envelope for GET /users/current.json.
	UserResponse struct {
		User User `json:"user"`
	}

	// SyncResponse is the envelope for GET /sync.json. Items are in
	// occurrence order.
	SyncResponse struct {
		Items []SyncItem `json:"items"`
		Meta  Meta       `json:"meta"`
	}
)
