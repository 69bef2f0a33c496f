// ABOUTME: CLI command for the hosted HTTP mode (Hugging Face Spaces etc.).
// ABOUTME: Mounts MCP at /mcp and /mcp/sse, optionally behind a bearer token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rousseya/strava-mcp-server/internal/logging"
	"github.com/rousseya/strava-mcp-server/internal/mcp"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hosted HTTP server",
	Long: `Start the MCP server over HTTP for hosted deployments.

ENDPOINTS:

  /mcp       Streamable HTTP transport (current MCP clients)
  /mcp/sse   Legacy SSE transport (older MCP clients)
  /healthz   Liveness probe, always open

AUTHENTICATION:

  When API_TOKEN is set, both MCP endpoints require a matching
  'Authorization: Bearer <token>' header. Requests without the header get
  401, requests with a wrong token get 403. Leave API_TOKEN unset for open
  access during local development.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(newStravaClient(), newGeocoder())
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.ListenAddr
		}

		mux := http.NewServeMux()
		mux.Handle("/mcp", mcp.BearerAuth(server.StreamableHTTPHandler(), cfg.APIToken))
		mux.Handle("/mcp/sse", mcp.BearerAuth(server.SSEHandler(), cfg.APIToken))
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		httpServer := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		go func() {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			_ = httpServer.Shutdown(shutdownCtx)
		}()

		logging.Info("starting hosted MCP server", "addr", addr, "auth", cfg.APIToken != "")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to LISTEN_ADDR, then :7860)")
	rootCmd.AddCommand(serveCmd)
}
