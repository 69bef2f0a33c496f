// ABOUTME: Typed errors for Strava API failures.
// ABOUTME: Callers branch on these instead of parsing HTTP status codes.
package strava

import (
	"errors"
	"fmt"
	"time"
)

// AuthError means the access token was rejected or the refresh token is no
// longer valid. This is fatal for the call; new tokens must be generated.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("strava authentication failed: %s (regenerate tokens with 'strava-mcp auth')", e.Reason)
}

// NotFoundError means the requested resource (usually an activity id) does
// not exist or is not visible to the athlete.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("strava %s %d not found", e.Resource, e.ID)
}

// RateLimitError means the API's rate limit was exceeded. RetryAfter is zero
// when the API did not provide a hint. The client never retries internally.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("strava rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "strava rate limit exceeded"
}

// APIError covers any other non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("strava api error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
