package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxdeal/storefront/internal/chat"
	"github.com/maxdeal/storefront/internal/dashboard"
	"github.com/maxdeal/storefront/internal/gemini"
	"github.com/maxdeal/storefront/internal/handlers"
)

func newServeCmd() *cobra.Command {
	var port string
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront API server",
		Long: `Starts the MaxDeal API on the specified port.

The API exposes the asset review dashboard (scan, single and batch
upgrades, activity log) and the shopping assistant chat sessions.`,
		Example: `  # Start server on default port 8888
  maxdeal serve

  # Start server on custom port with a catalog file
  maxdeal serve --port 3000 --catalog products.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, source, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			slog.Info("Catalog loaded", "source", source, "products", len(cat.Items))

			dash := dashboard.New(gemini.NewImageClient(), nil)
			if err := dash.Scan(cat.Items); err != nil {
				return err
			}

			manager := chat.NewManager(gemini.NewChatTransport())
			handler := handlers.New(cat, dash, manager)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/assets", handler.HandleAssets)
			mux.HandleFunc("/api/assets/scan", handler.HandleAssetScan)
			mux.HandleFunc("/api/assets/upgrade", handler.HandleAssetUpgradeAll)
			mux.HandleFunc("/api/assets/log", handler.HandleAssetLog)
			mux.HandleFunc("/api/assets/", handler.HandleAssetDetail)
			mux.HandleFunc("/api/chat/sessions", handler.HandleChatSessions)
			mux.HandleFunc("/api/chat/sessions/", handler.HandleChatSessionDetail)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("MaxDeal API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a catalog YAML file")

	return cmd
}
