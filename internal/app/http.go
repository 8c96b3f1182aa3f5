package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/worktrack-backend/internal/auth"
	"github.com/heartmarshall/worktrack-backend/internal/config"
	"github.com/heartmarshall/worktrack-backend/internal/metrics"
	"github.com/heartmarshall/worktrack-backend/internal/service/request"
	"github.com/heartmarshall/worktrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/worktrack-backend/internal/transport/rest"
)

// newHTTPHandler assembles the REST router and its middleware chain.
// The returned stop func releases background resources (the rate limiter).
func newHTTPHandler(
	cfg *config.Config,
	logger *slog.Logger,
	svc *request.Service,
	st *storage,
	rec *metrics.Recorder,
	tokens *auth.JWTManager,
) (http.Handler, func()) {
	routes := rest.Routes{
		Requests: rest.NewRequestHandler(svc, logger, cfg.Server.MaxBodyBytes),
		Health:   rest.NewHealthHandler(st.health, st.driver, BuildVersion()),
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = rec.Handler()
		routes.MetricsPath = cfg.Metrics.Path
	}
	mux := rest.NewRouter(routes)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
	}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
		stop = limiter.Stop
	}

	// Metrics wraps the mux directly so it sees the matched route pattern.
	mws = append(mws, middleware.Metrics(rec))

	return middleware.Chain(mws...)(mux), stop
}
