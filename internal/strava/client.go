// ABOUTME: HTTP client for the Strava API v3 with automatic token refresh.
// ABOUTME: The credential set is the only mutable state; a mutex guards it.
package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rousseya/strava-mcp-server/internal/logging"
)

const (
	// DefaultBaseURL is the Strava API v3 root.
	DefaultBaseURL = "https://www.strava.com/api/v3"

	// DefaultTokenURL is the Strava OAuth token endpoint.
	DefaultTokenURL = "https://www.strava.com/oauth/token"

	// AuthorizeURL is the Strava OAuth authorization page.
	AuthorizeURL = "https://www.strava.com/oauth/authorize"

	// refreshSkew refreshes tokens slightly before they actually expire so
	// an in-flight request never races the expiry.
	refreshSkew = 60 * time.Second
)

// Credentials is the injectable credential set. ExpiresAt is zero when the
// access token's lifetime is unknown, which forces a refresh on first use.
type Credentials struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Client talks to the Strava API on behalf of a single athlete.
type Client struct {
	baseURL    string
	tokenURL   string
	httpClient *http.Client

	mu    sync.Mutex
	creds Credentials
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTokenURL overrides the OAuth token endpoint, used by tests.
func WithTokenURL(u string) Option {
	return func(c *Client) { c.tokenURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client around the given credential set.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		tokenURL:   DefaultTokenURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials returns a copy of the current credential set. Useful for
// persisting refreshed tokens.
func (c *Client) Credentials() Credentials {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creds
}

// token returns a valid access token, refreshing first when the current one
// is expired or of unknown age. The refresh completes (or fails) before any
// dependent API call proceeds.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.creds.ExpiresAt.IsZero() && time.Until(c.creds.ExpiresAt) > refreshSkew {
		return c.creds.AccessToken, nil
	}

	form := url.Values{
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
		"grant_type":    {"refresh_token"},
		"refresh_token": {c.creds.RefreshToken},
	}

	tok, err := postTokenForm(ctx, c.httpClient, c.tokenURL, form)
	if err != nil {
		return "", err
	}

	c.creds.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		c.creds.RefreshToken = tok.RefreshToken
	}
	c.creds.ExpiresAt = time.Unix(tok.ExpiresAt, 0)

	logging.Debug("refreshed strava access token", "expires_at", c.creds.ExpiresAt)
	return c.creds.AccessToken, nil
}

// ListActivities returns the athlete's most recent activities, newest first.
func (c *Client) ListActivities(ctx context.Context, limit int) ([]SummaryActivity, error) {
	if limit <= 0 {
		limit = 30
	}

	var activities []SummaryActivity
	q := url.Values{"per_page": {strconv.Itoa(limit)}}
	if err := c.doJSON(ctx, http.MethodGet, "/athlete/activities?"+q.Encode(), nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivity fetches full details for one activity.
func (c *Client) GetActivity(ctx context.Context, id int64) (*DetailedActivity, error) {
	var activity DetailedActivity
	path := fmt.Sprintf("/activities/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &activity); err != nil {
		return nil, notFoundAs(err, "activity", id)
	}
	return &activity, nil
}

// GetAthlete fetches the authenticated athlete's profile.
func (c *Client) GetAthlete(ctx context.Context) (*Athlete, error) {
	var athlete Athlete
	if err := c.doJSON(ctx, http.MethodGet, "/athlete", nil, &athlete); err != nil {
		return nil, err
	}
	return &athlete, nil
}

// GetAthleteStats fetches aggregate ride/run totals for the authenticated
// athlete.
func (c *Client) GetAthleteStats(ctx context.Context) (*AthleteStats, error) {
	athlete, err := c.GetAthlete(ctx)
	if err != nil {
		return nil, err
	}

	var stats AthleteStats
	path := fmt.Sprintf("/athletes/%d/stats", athlete.ID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// UpdateActivity changes an activity's name and/or sport type and returns
// the updated record.
func (c *Client) UpdateActivity(ctx context.Context, id int64, params UpdateActivityParams) (*DetailedActivity, error) {
	form := url.Values{}
	if params.Name != nil {
		form.Set("name", *params.Name)
	}
	if params.SportType != nil {
		form.Set("sport_type", *params.SportType)
	}

	var activity DetailedActivity
	path := fmt.Sprintf("/activities/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, strings.NewReader(form.Encode()), &activity); err != nil {
		return nil, notFoundAs(err, "activity", id)
	}
	return &activity, nil
}

// doJSON performs one authenticated request against the API and decodes the
// JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("strava request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode strava response: %w", err)
	}
	return nil
}

// errorFromResponse maps a non-2xx response to a typed error.
func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{Reason: strings.TrimSpace(string(body))}
	case http.StatusNotFound:
		return &NotFoundError{Resource: "resource"}
	case http.StatusTooManyRequests:
		var retryAfter time.Duration
		if v := resp.Header.Get("Retry-After"); v != "" {
			if secs, err := strconv.Atoi(v); err == nil {
				retryAfter = time.Duration(secs) * time.Second
			}
		}
		return &RateLimitError{RetryAfter: retryAfter}
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
}

// notFoundAs fills in the resource identity on a generic not-found error.
func notFoundAs(err error, resource string, id int64) error {
	if nf, ok := err.(*NotFoundError); ok {
		nf.Resource = resource
		nf.ID = id
		return nf
	}
	return err
}

// ExchangeCode trades an OAuth authorization code for a token pair. Used by
// the token acquisition helper.
func ExchangeCode(ctx context.Context, hc *http.Client, tokenURL, clientID, clientSecret, code string) (*TokenResponse, error) {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	form := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"grant_type":    {"authorization_code"},
		"code":          {code},
	}
	return postTokenForm(ctx, hc, tokenURL, form)
}

// BuildAuthorizeURL constructs the Strava OAuth authorization URL for the
// read/update scopes this server uses.
func BuildAuthorizeURL(clientID, redirectURI, state string) string {
	q := url.Values{
		"client_id":     {clientID},
		"redirect_uri":  {redirectURI},
		"response_type": {"code"},
		"scope":         {"read,activity:read_all,activity:write,profile:read_all"},
		"state":         {state},
	}
	return AuthorizeURL + "?" + q.Encode()
}

func postTokenForm(ctx context.Context, hc *http.Client, tokenURL string, form url.Values) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &AuthError{Reason: fmt.Sprintf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	var tok TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, &AuthError{Reason: "token endpoint returned no access token"}
	}
	return &tok, nil
}
