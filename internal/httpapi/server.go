package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/app"
	"catppuccin-api/internal/ports"
)

const shutdownTimeout = 10 * time.Second

// NewRouter returns a gin engine serving query at the root path. cache may
// be nil when no document cache is configured.
func NewRouter(query app.QueryService, cache ports.DocumentCachePort) *gin.Engine {
	router := gin.New()
	router.Use(recovery(), requestLogger())
	NewHandler(query, cache).RegisterRoutes(&router.RouterGroup)
	return router
}

// Serve listens on addr until ctx is canceled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down http server")
	case err, ok := <-errCh:
		if ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeUnavailable).
				WithMsg("http server failed").
				WithCause(err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("http shutdown failed").
			WithCause(err)
	}
	log.Info().Msg("http server stopped")
	return nil
}
