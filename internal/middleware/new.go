package middleware

import (
	"errand-planner/config"
	"errand-planner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	cors    config.CORSConfig
}

// New builds the shared middleware set. Rate limiting is a no-op when
// disabled in cfg.
func New(l log.Logger, cfg *config.Config) Middleware {
	mw := Middleware{
		l:    l,
		cors: cfg.CORS,
	}
	if cfg.RateLimit.Enabled {
		mw.limiter = newRateLimiter(cfg.RateLimit)
	}
	return mw
}
