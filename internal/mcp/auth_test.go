// ABOUTME: Tests for the bearer-token middleware on the hosted endpoints.
// ABOUTME: Covers open access, missing header, wrong token, and success.
package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBearerAuth(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		apiToken   string
		authHeader string
		wantStatus int
	}{
		{
			name:       "open access when no token configured",
			apiToken:   "",
			authHeader: "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			apiToken:   "secret-token",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme",
			apiToken:   "secret-token",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token",
			apiToken:   "secret-token",
			authHeader: "Bearer nope",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "correct token",
			apiToken:   "secret-token",
			authHeader: "Bearer secret-token",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := BearerAuth(inner, tt.apiToken)
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("error body is not JSON: %v", err)
				}
				if body["detail"] == "" {
					t.Error("error body should carry a detail message")
				}
			}
		})
	}
}

func TestBearerAuthOpenAccessReturnsSameHandler(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	if got := BearerAuth(inner, ""); got == nil {
		t.Fatal("expected the inner handler back")
	}
}
