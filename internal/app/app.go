package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/verimail/verimail-backend/internal/adapter/checker"
	"github.com/verimail/verimail-backend/internal/config"
	"github.com/verimail/verimail-backend/internal/service/validation"
	gqltransport "github.com/verimail/verimail-backend/internal/transport/graphql"
	"github.com/verimail/verimail-backend/internal/transport/graphql/resolver"
	"github.com/verimail/verimail-backend/internal/transport/middleware"
	"github.com/verimail/verimail-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the validation service into the GraphQL transport, and
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	svc := validation.NewService(checker.Syntax())
	res := resolver.NewResolver(svc)

	var rl *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rl = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
	}

	handler := buildHandler(cfg, logger, svc, res, rl)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("http server listening",
		slog.String("addr", srv.Addr),
		slog.String("graphql_path", cfg.GraphQL.Path),
		slog.String("playground_path", cfg.GraphQL.PlaygroundPath),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// buildHandler assembles the route table and middleware chain. Routes and
// schema are constructed once here; request handling reads them only.
func buildHandler(cfg *config.Config, logger *slog.Logger, svc *validation.Service, res *resolver.Resolver, rl *middleware.RateLimiter) http.Handler {
	gql := gqltransport.NewHandler(gqltransport.NewExecutor(res))
	health := rest.NewHealthHandler(svc, BuildVersion())

	mux := http.NewServeMux()
	mux.Handle(cfg.GraphQL.Path, gql)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle(cfg.GraphQL.PlaygroundPath, rest.Explorer(cfg.GraphQL.Path))
	}
	mux.HandleFunc("/healthz", health.Live)
	mux.HandleFunc("/health", health.Health)
	mux.Handle("/", rest.Static(cfg.Static.Dir))

	// CacheControl sits outside CORS: preflight responses short-circuit the
	// chain inside CORS and must still carry the no-store headers.
	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CacheControl,
		middleware.CORS(cfg.CORS),
	}
	if rl != nil {
		mws = append(mws, rl.Limit(cfg.RateLimit.RequestsPerMinute))
	}

	return middleware.Chain(mws...)(mux)
}
