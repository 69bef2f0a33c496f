// ABOUTME: Reverse geocoding via the Nominatim (OpenStreetMap) API.
// ABOUTME: Failures degrade to "no location" instead of propagating errors.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rousseya/strava-mcp-server/internal/logging"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// userAgent identifies this server per the Nominatim usage policy.
const userAgent = "strava-mcp-server"

// Location is a structured place name. A nil *Location means no location
// could be determined, which callers must treat as a normal outcome.
type Location struct {
	City        string `json:"city,omitempty"`
	Suburb      string `json:"suburb,omitempty"`
	County      string `json:"county,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	FullAddress string `json:"full_address,omitempty"`
}

// Label renders the location as "city, state, country", skipping empty
// parts. Returns "" for an empty location.
func (l *Location) Label() string {
	if l == nil {
		return ""
	}
	label := ""
	for _, part := range []string{l.City, l.State, l.Country} {
		if part == "" {
			continue
		}
		if label != "" {
			label += ", "
		}
		label += part
	}
	return label
}

// Geocoder converts coordinates into a structured place name.
type Geocoder interface {
	// Reverse returns nil (and no error) when the coordinates cannot be
	// resolved; errors are reserved for programming mistakes, not lookup
	// failures.
	Reverse(ctx context.Context, lat, lon float64) *Location
}

// Nominatim implements Geocoder against a Nominatim HTTP endpoint.
type Nominatim struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option customizes a Nominatim geocoder.
type Option func(*Nominatim)

// WithBaseURL overrides the Nominatim endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(n *Nominatim) { n.baseURL = u }
}

// WithLanguage sets the accept-language parameter for place names.
func WithLanguage(lang string) Option {
	return func(n *Nominatim) { n.language = lang }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(n *Nominatim) { n.httpClient = hc }
}

// NewNominatim creates a reverse geocoder. Place names default to French,
// matching the athlete locale the generic-name templates target.
func NewNominatim(opts ...Option) *Nominatim {
	n := &Nominatim{
		baseURL:    DefaultBaseURL,
		language:   "fr",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// reverseResponse is the subset of the Nominatim jsonv2 reverse payload the
// server reads. Nominatim reports the locality under whichever key fits the
// place best, so several are tried in order.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		Hamlet       string `json:"hamlet"`
		Suburb       string `json:"suburb"`
		County       string `json:"county"`
		State        string `json:"state"`
		Country      string `json:"country"`
	} `json:"address"`
}

// Reverse resolves coordinates to a place name. Any failure — transport
// error, non-200 status, empty result — yields nil.
func (n *Nominatim) Reverse(ctx context.Context, lat, lon float64) *Location {
	q := url.Values{
		"format":          {"jsonv2"},
		"lat":             {strconv.FormatFloat(lat, 'f', 6, 64)},
		"lon":             {strconv.FormatFloat(lon, 'f', 6, 64)},
		"accept-language": {n.language},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		logging.Debug("reverse geocoding failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Debug("reverse geocoding failed", "status", resp.StatusCode)
		return nil
	}

	var rr reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		logging.Debug("reverse geocoding decode failed", "error", err)
		return nil
	}
	if rr.DisplayName == "" {
		return nil
	}

	return &Location{
		City:        firstNonEmpty(rr.Address.City, rr.Address.Town, rr.Address.Village, rr.Address.Municipality, rr.Address.Hamlet),
		Suburb:      rr.Address.Suburb,
		County:      rr.Address.County,
		State:       rr.Address.State,
		Country:     rr.Address.Country,
		FullAddress: rr.DisplayName,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ Geocoder = (*Nominatim)(nil)

// String implements fmt.Stringer for debug logging.
func (l *Location) String() string {
	if l == nil {
		return "<no location>"
	}
	return fmt.Sprintf("Location(%s)", l.Label())
}
