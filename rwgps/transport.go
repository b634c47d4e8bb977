package rwgps

import "net/http"

// Credential header names expected by the RideWithGPS API.
const (
	headerAPIKey    = "x-rwgps-api-key"
	headerAuthToken = "x-rwgps-auth-token"
)

// headerTransport is a RoundTripper that attaches the static credential
// headers to every outgoing request, so individual client methods never
// touch authentication.
type headerTransport struct {
	base      http.RoundTripper
	apiKey    string
	authToken string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(headerAPIKey, t.apiKey)
	req.Header.Set(headerAuthToken, t.authToken)
	req.Header.Set("Accept", "application/json")
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
