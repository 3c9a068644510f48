package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/r2-uploader-go/internal/config"
	"github.com/fhuszti/r2-uploader-go/internal/handler/api"
	"github.com/fhuszti/r2-uploader-go/internal/logger"
	cMiddleware "github.com/fhuszti/r2-uploader-go/internal/middleware"
	"github.com/fhuszti/r2-uploader-go/internal/port"
	"github.com/fhuszti/r2-uploader-go/internal/ratelimit"
	"github.com/fhuszti/r2-uploader-go/internal/storage"
	"github.com/fhuszti/r2-uploader-go/internal/transport"
	"github.com/fhuszti/r2-uploader-go/internal/usecase/health"
	"github.com/fhuszti/r2-uploader-go/internal/usecase/upload"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type services struct {
	links   port.LinkIssuer
	relay   port.RelayUploader
	health  port.HealthReporter
	limiter port.RateLimiter
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	strg := initStorage(ctx, cfg)
	limiter, closer := initRateLimiter(ctx, cfg)

	svcs := services{
		links:   upload.NewLinkIssuer(strg, cfg.PublicURL),
		relay:   upload.NewRelayer(strg, transport.NewPutter(), cfg.PublicURL),
		health:  health.NewReporter(cfg.Presence, time.Now),
		limiter: limiter,
	}

	r := initRouter(ctx, cfg, svcs)

	listenRouter(ctx, r, cfg, closer)
}

func initRouter(ctx context.Context, cfg *config.Settings, svcs services) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(cMiddleware.WithRequestID())
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	var extraHeaders []string
	if cfg.JWTPublicKey != "" {
		extraHeaders = append(extraHeaders, "Authorization")
	}
	postMethods := []string{http.MethodPost, http.MethodOptions}
	getMethods := []string{http.MethodGet, http.MethodOptions}

	r.Group(func(r chi.Router) {
		r.Use(cMiddleware.WithCORS(postMethods, extraHeaders...))

		r.Options("/generate-upload-url", api.PreflightHandler())
		r.Options("/generate-download-url", api.PreflightHandler())
		r.Options("/upload", api.PreflightHandler())

		r.Group(func(r chi.Router) {
			r.Use(cMiddleware.WithBearerAuth(cfg.JWTPublicKey, cfg.JWTIssuer, cfg.JWTAudience))

			r.With(cMiddleware.WithRateLimit(svcs.limiter, "generate-upload-url")).
				Post("/generate-upload-url", api.GenerateUploadURLHandler(svcs.links))
			r.With(cMiddleware.WithRateLimit(svcs.limiter, "generate-download-url")).
				Post("/generate-download-url", api.GenerateDownloadURLHandler(svcs.links))
			r.With(cMiddleware.WithRateLimit(svcs.limiter, "upload")).
				Post("/upload", api.UploadHandler(svcs.relay, cfg.MaxUploadBytes))
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(cMiddleware.WithCORS(getMethods))

		r.Options("/health", api.PreflightHandler())
		r.Get("/health", api.HealthHandler(svcs.health))
	})

	return r
}

// initStorage never stops the process: without a usable client the service
// still boots, answers /health and fails signing calls.
func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewR2Storage(
		cfg.R2Endpoint,
		cfg.AccessKeyID,
		cfg.SecretAccessKey,
		cfg.Bucket,
	)
	if err != nil {
		logger.Warnf(ctx, "⚠️  Storage client unavailable, signing requests will fail: %v", err)
		return storage.NewUnavailable(err)
	}

	logger.Info(ctx, "✅  Storage client ready")
	return strg
}

func initRateLimiter(ctx context.Context, cfg *config.Settings) (port.RateLimiter, io.Closer) {
	if cfg.RedisAddr == "" {
		logger.Warn(ctx, "⚠️  Redis not configured, rate limiting is disabled")
		return ratelimit.Noop{}, nil
	}

	rl := ratelimit.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RateLimitRequests, cfg.RateLimitWindow)
	logger.Infof(ctx, "✅  Rate limiting enabled: %d requests per %s", cfg.RateLimitRequests, cfg.RateLimitWindow)
	return rl, rl
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, closer io.Closer) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// in-flight relays get the same grace period
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if closer != nil {
		if err := closer.Close(); err != nil {
			logger.Errorf(ctx, "Redis close error: %v", err)
			os.Exit(1)
		}
	}
}
