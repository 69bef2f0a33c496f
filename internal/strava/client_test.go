// ABOUTME: Tests for the Strava API client and token refresh behavior.
// ABOUTME: Uses a fake HTTP server for the API and the token endpoint.
package strava

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// fakeStrava is an httptest server pretending to be both the Strava API and
// the OAuth token endpoint.
type fakeStrava struct {
	srv      *httptest.Server
	refreshs atomic.Int64
	apiCalls atomic.Int64

	// handler runs for API (non-token) paths.
	handler http.HandlerFunc
}

func newFakeStrava(t *testing.T, handler http.HandlerFunc) *fakeStrava {
	t.Helper()

	f := &fakeStrava{handler: handler}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.refreshs.Add(1)
		if err := r.ParseForm(); err != nil {
			t.Fatalf("bad token form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "refresh_token" {
			t.Errorf("grant_type = %q, want refresh_token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "fresh-token",
			"refresh_token": "next-refresh",
			"expires_at": ` + strconv.FormatInt(time.Now().Add(6*time.Hour).Unix(), 10) + `
		}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.apiCalls.Add(1)
		f.handler(w, r)
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeStrava) client(creds Credentials) *Client {
	return NewClient(creds,
		WithBaseURL(f.srv.URL),
		WithTokenURL(f.srv.URL+"/oauth/token"),
		WithHTTPClient(f.srv.Client()))
}

func testCreds() Credentials {
	return Credentials{
		ClientID:     "111",
		ClientSecret: "secret",
		AccessToken:  "stale-token",
		RefreshToken: "refresh-0",
	}
}

func TestTokenRefreshedBeforeFirstCall(t *testing.T) {
	var seenAuth string
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	c := f.client(testCreds()) // unknown expiry forces a refresh
	if _, err := c.ListActivities(context.Background(), 5); err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}

	if got := f.refreshs.Load(); got != 1 {
		t.Errorf("refresh count = %d, want 1", got)
	}
	if seenAuth != "Bearer fresh-token" {
		t.Errorf("Authorization = %q, want the refreshed token", seenAuth)
	}

	creds := c.Credentials()
	if creds.AccessToken != "fresh-token" || creds.RefreshToken != "next-refresh" {
		t.Errorf("credential set not updated in place: %+v", creds)
	}
}

func TestTokenReusedUntilExpiry(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	c := f.client(testCreds())
	for i := 0; i < 3; i++ {
		if _, err := c.ListActivities(context.Background(), 1); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}

	if got := f.refreshs.Load(); got != 1 {
		t.Errorf("refresh count = %d, want 1 (token must be reused until expiry)", got)
	}
}

func TestTokenNotRefreshedWhenFresh(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	creds := testCreds()
	creds.ExpiresAt = time.Now().Add(2 * time.Hour)
	c := f.client(creds)

	if _, err := c.ListActivities(context.Background(), 1); err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if got := f.refreshs.Load(); got != 0 {
		t.Errorf("refresh count = %d, want 0 for a fresh token", got)
	}
}

func TestRefreshFailureSurfacesAuthError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Bad Request"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(testCreds(),
		WithBaseURL(srv.URL),
		WithTokenURL(srv.URL+"/oauth/token"),
		WithHTTPClient(srv.Client()))

	_, err := c.ListActivities(context.Background(), 1)
	if !IsAuthError(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestListActivitiesPerPage(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/athlete/activities" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("per_page"); got != "7" {
			t.Errorf("per_page = %q, want 7", got)
		}
		_, _ = w.Write([]byte(`[{"id": 42, "name": "Morning Run", "type": "Run", "sport_type": "Run", "distance": 8000.5}]`))
	})

	activities, err := f.client(testCreds()).ListActivities(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if len(activities) != 1 || activities[0].ID != 42 || activities[0].Name != "Morning Run" {
		t.Errorf("unexpected activities: %+v", activities)
	}
}

func TestListActivitiesDefaultLimit(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("per_page"); got != "30" {
			t.Errorf("per_page = %q, want default 30", got)
		}
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := f.client(testCreds()).ListActivities(context.Background(), 0); err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
}

func TestGetActivityNotFound(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Record Not Found"}`))
	})

	_, err := f.client(testCreds()).GetActivity(context.Background(), 999)
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		if nf.ID != 999 || nf.Resource != "activity" {
			t.Errorf("NotFoundError = %+v", nf)
		}
	}
}

func TestRateLimitRetryAfter(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := f.client(testCreds()).ListActivities(context.Background(), 1)
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.RetryAfter != 2*time.Minute {
		t.Errorf("RetryAfter = %v, want 2m", rl.RetryAfter)
	}
	if got := f.apiCalls.Load(); got != 1 {
		t.Errorf("api calls = %d, want 1 (no internal retry)", got)
	}
}

func TestUnauthorizedAPIResponse(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Authorization Error"}`))
	})

	_, err := f.client(testCreds()).ListActivities(context.Background(), 1)
	if !IsAuthError(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestServerErrorMapsToAPIError(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream trouble`))
	})

	_, err := f.client(testCreds()).ListActivities(context.Background(), 1)
	var api *APIError
	if !errors.As(err, &api) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if api.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", api.StatusCode)
	}
}

func TestUpdateActivitySendsForm(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/activities/42" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("bad form: %v", err)
		}
		if got := r.PostForm.Get("name"); got != "Col du Galibier Epic" {
			t.Errorf("name = %q", got)
		}
		if got := r.PostForm.Get("sport_type"); got != "EMountainBikeRide" {
			t.Errorf("sport_type = %q", got)
		}
		_, _ = w.Write([]byte(`{"id": 42, "name": "Col du Galibier Epic", "sport_type": "EMountainBikeRide"}`))
	})

	name := "Col du Galibier Epic"
	sportType := "EMountainBikeRide"
	updated, err := f.client(testCreds()).UpdateActivity(context.Background(), 42, UpdateActivityParams{
		Name:      &name,
		SportType: &sportType,
	})
	if err != nil {
		t.Fatalf("UpdateActivity failed: %v", err)
	}
	if updated.Name != name || updated.SportType != sportType {
		t.Errorf("unexpected update result: %+v", updated)
	}
}

func TestGetAthleteStats(t *testing.T) {
	f := newFakeStrava(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/athlete":
			_, _ = w.Write([]byte(`{"id": 7, "username": "rider"}`))
		case "/athletes/7/stats":
			_, _ = w.Write([]byte(`{
				"ytd_ride_totals": {"count": 12, "distance": 420000, "moving_time": 54000, "elevation_gain": 8100}
			}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	stats, err := f.client(testCreds()).GetAthleteStats(context.Background())
	if err != nil {
		t.Fatalf("GetAthleteStats failed: %v", err)
	}
	if stats.YTDRideTotals == nil || stats.YTDRideTotals.Count != 12 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AllRunTotals != nil {
		t.Error("absent totals should stay nil")
	}
}

func TestExchangeCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("grant_type"); got != "authorization_code" {
			t.Errorf("grant_type = %q", got)
		}
		if got := r.PostForm.Get("code"); got != "abc123" {
			t.Errorf("code = %q", got)
		}
		_, _ = w.Write([]byte(`{"access_token": "at", "refresh_token": "rt", "expires_at": 1900000000}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	tok, err := ExchangeCode(context.Background(), srv.Client(), srv.URL+"/oauth/token", "111", "secret", "abc123")
	if err != nil {
		t.Fatalf("ExchangeCode failed: %v", err)
	}
	if tok.AccessToken != "at" || tok.RefreshToken != "rt" {
		t.Errorf("unexpected token response: %+v", tok)
	}
}

func TestBuildAuthorizeURL(t *testing.T) {
	u := BuildAuthorizeURL("111", "http://localhost:8000/authorized", "state-1")
	for _, want := range []string{"client_id=111", "state=state-1", "response_type=code", "activity%3Awrite"} {
		if !strings.Contains(u, want) {
			t.Errorf("authorize URL missing %q: %s", want, u)
		}
	}
}

func TestLatLng(t *testing.T) {
	tests := []struct {
		name  string
		ll    LatLng
		valid bool
	}{
		{"nil", nil, false},
		{"empty", LatLng{}, false},
		{"zero pair", LatLng{0, 0}, false},
		{"valid", LatLng{43.6, 3.87}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ll.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}

	ll := LatLng{43.6, 3.87}
	if ll.Lat() != 43.6 || ll.Lng() != 3.87 {
		t.Errorf("Lat/Lng = %v/%v", ll.Lat(), ll.Lng())
	}
}
