package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/curator-backend/internal/auth"
	"github.com/heartmarshall/curator-backend/internal/config"
	"github.com/heartmarshall/curator-backend/internal/enrichment"
	"github.com/heartmarshall/curator-backend/internal/metrics"
	authsvc "github.com/heartmarshall/curator-backend/internal/service/auth"
	"github.com/heartmarshall/curator-backend/internal/transport/dataloader"
	"github.com/heartmarshall/curator-backend/internal/transport/middleware"
	"github.com/heartmarshall/curator-backend/internal/transport/rest"
)

// NewHandler assembles the routed, middleware-wrapped HTTP handler. The
// returned limiter must be stopped on shutdown.
func NewHandler(
	cfg *config.Config,
	deps *Deps,
	pinger interface {
		Ping(ctx context.Context) error
	},
	collector *metrics.Collector,
	logger *slog.Logger,
) (http.Handler, *middleware.RateLimiter) {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, deps.Users, jwt, cfg.Auth)
	limiter := middleware.NewRateLimiter(5 * time.Minute)

	mux := rest.NewMux(rest.Routes{
		Health:       rest.NewHealthHandler(pinger, Version, rest.WithLLM(llmStatus(cfg.LLM, deps.Completer))),
		Auth:         rest.NewAuthHandler(authService, logger),
		Content:      rest.NewContentHandler(deps.ContentService, deps.Categories, logger),
		Category:     rest.NewCategoryHandler(deps.CategoryService, logger),
		Admin:        rest.NewAdminHandler(deps.UserService, logger),
		Analysis:     rest.NewAnalysisHandler(deps.AnalysisService, logger),
		Metrics:      collector.Handler(),
		AnalyzeLimit: limiter.Limit(cfg.RateLimit.AnalyzePerMinute, cfg.RateLimit.AnalyzeBurst),
	})

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(collector),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		dataloader.Middleware(deps.Categories),
	)
	return chain(middleware.CaptureRoute(mux)), limiter
}

// llmStatus describes the provider for /health. The breaker state is
// reported only when the client is wrapped in one.
func llmStatus(cfg config.LLMConfig, c enrichment.Completer) rest.LLMStatus {
	s := rest.LLMStatus{Provider: cfg.Provider, Configured: cfg.ProviderKey() != ""}
	if b, ok := c.(interface{ State() string }); ok {
		s.BreakerState = b.State
	}
	return s
}

// NewServer wraps handler in an http.Server configured from cfg.
func NewServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
