// ABOUTME: CLI command for the one-time OAuth token acquisition flow.
// ABOUTME: Opens the Strava authorization page and captures the callback.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rousseya/strava-mcp-server/internal/strava"
)

var authPort int

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Generate Strava API tokens",
	Long: `Run the OAuth authorization flow to generate an access/refresh token pair
with the read and write scopes this server needs.

Requires STRAVA_CLIENT_ID and STRAVA_CLIENT_SECRET in the environment (or a
.env file). The command prints an authorization URL, listens on localhost
for the Strava callback, exchanges the code, and prints the tokens to copy
into your .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ClientID == "" || cfg.ClientSecret == "" {
			return fmt.Errorf("STRAVA_CLIENT_ID and STRAVA_CLIENT_SECRET must be set")
		}
		return runAuthFlow(cmd.Context())
	},
}

func init() {
	authCmd.Flags().IntVar(&authPort, "port", 8000, "local port for the OAuth callback")
	rootCmd.AddCommand(authCmd)
}

type authResult struct {
	tokens *strava.TokenResponse
	err    error
}

func runAuthFlow(ctx context.Context) error {
	redirectURI := fmt.Sprintf("http://localhost:%d/authorized", authPort)
	state := uuid.NewString()
	authURL := strava.BuildAuthorizeURL(cfg.ClientID, redirectURI, state)

	bold := color.New(color.Bold)
	fmt.Println("1. Open this URL in your browser and authorize the application:")
	fmt.Println()
	bold.Printf("   %s\n", authURL)
	fmt.Println()
	fmt.Printf("2. Waiting for the Strava callback on %s ... (Ctrl+C to cancel)\n", redirectURI)

	resultCh := make(chan authResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/authorized", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if errMsg := q.Get("error"); errMsg != "" {
			http.Error(w, "Authorization failed: "+errMsg, http.StatusBadRequest)
			resultCh <- authResult{err: fmt.Errorf("authorization failed: %s", errMsg)}
			return
		}
		if q.Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			resultCh <- authResult{err: fmt.Errorf("oauth callback returned an invalid state parameter")}
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "Missing authorization code", http.StatusBadRequest)
			resultCh <- authResult{err: fmt.Errorf("oauth callback carried no authorization code")}
			return
		}

		tokens, err := strava.ExchangeCode(r.Context(), nil, "", cfg.ClientID, cfg.ClientSecret, code)
		if err != nil {
			http.Error(w, "Token exchange failed", http.StatusInternalServerError)
			resultCh <- authResult{err: fmt.Errorf("token exchange failed: %w", err)}
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body style="font-family: sans-serif; padding: 40px;">
<h1>Success!</h1>
<p>Tokens received. Check your terminal for the new tokens.</p>
<p>You can close this window.</p>
</body></html>`)
		resultCh <- authResult{tokens: tokens}
	})

	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", authPort))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", authPort, err)
	}

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		_ = server.Serve(listener)
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	var result authResult
	select {
	case result = <-resultCh:
	case <-ctx.Done():
		return ctx.Err()
	}
	if result.err != nil {
		return result.err
	}

	green := color.New(color.FgGreen, color.Bold)
	green.Println("\nSuccess! Copy these into your .env file:")
	fmt.Println()
	fmt.Printf("STRAVA_ACCESS_TOKEN=%s\n", result.tokens.AccessToken)
	fmt.Printf("STRAVA_REFRESH_TOKEN=%s\n", result.tokens.RefreshToken)
	return nil
}
