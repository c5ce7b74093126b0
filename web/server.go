package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/vkeymap/logging"
	"github.com/dasdy/vkeymap/web/routes"
)

var logCtx = logging.PackageCtx("web")

const shutdownTimeout = 5 * time.Second

func disableCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func BuildServer(handler *routes.ServerHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /layout.json", disableCache(http.HandlerFunc(handler.LayoutJSONHandle)))
	mux.Handle("GET /layout.xml", disableCache(http.HandlerFunc(handler.LayoutXMLHandle)))
	mux.Handle("GET /point", http.HandlerFunc(handler.PointHandle))
	mux.Handle("GET /layouts", http.HandlerFunc(handler.LayoutsHandle))

	if handler.NeighborTracker != nil {
		mux.Handle("GET /neighbors", http.HandlerFunc(handler.NeighborsHandle))
	}

	if handler.CorrectionTracker != nil {
		mux.Handle("GET /corrections", http.HandlerFunc(handler.CorrectionsHandle))
	}

	if handler.Storage != nil {
		mux.Handle("GET /{$}", http.HandlerFunc(handler.StatsHandle))
	} else {
		mux.Handle("GET /{$}", http.RedirectHandler("/layouts", http.StatusSeeOther))
	}

	return mux
}

// StartServer serves the diagnostics pages on port until ctx is done.
func StartServer(ctx context.Context, port int, handler *routes.ServerHandler) error {
	slog.InfoContext(logCtx, "Running interface", "port", port)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           BuildServer(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(logCtx, "Could not stop server", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
