package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loanquote/config"
	"github.com/guttosm/loanquote/internal/api"
	"github.com/guttosm/loanquote/internal/cache"
	"github.com/guttosm/loanquote/internal/calendar"
	"github.com/guttosm/loanquote/internal/logger"
	"github.com/guttosm/loanquote/internal/service"
	"github.com/guttosm/loanquote/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Connects to Redis when REDIS_ADDR is set, otherwise uses the in-process cache.
//   - Builds the quote service on top of the repository, cache and holiday calendar.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	quoteCache, closeCache := initCache(cfg)

	repo := storage.NewQuotesRepository(db)
	svc := service.NewQuoteService(service.Options{
		Repo:     repo,
		Cache:    quoteCache,
		CacheTTL: cfg.Quotes.CacheTTL,
		Calendar: calendar.Default(),
	})

	handler := api.NewHandler(svc, cfg.Quotes.DefaultLocale)
	router := api.NewRouter(handler, cfg.Server.RateLimitPerMinute)

	healthHandler := api.NewHealthHandler(
		api.Probe{Name: "postgres", Check: db.PingContext},
		api.Probe{Name: cacheProbeName(quoteCache), Check: quoteCache.Ping},
	)
	healthHandler.Register(router)

	cleanup := func() {
		closeCache()
		_ = db.Close()
	}

	return router, cleanup, nil
}

// initCache prefers Redis and falls back to the memory cache when Redis is
// not configured or unreachable; quoting never depends on the cache.
func initCache(cfg config.Config) (cache.Cache, func()) {
	log := logger.Component("app")
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, using in-memory quote cache")
		return cache.NewMemoryCache(), func() {}
	}

	rc, err := redisOpener(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-memory quote cache")
		return cache.NewMemoryCache(), func() {}
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis quote cache")
	return rc, func() { _ = rc.Close() }
}


// cacheProbeName names the readiness check after the active backend, so a
// fallback to the memory cache is visible on /readyz.
func cacheProbeName(c cache.Cache) string {
	if _, ok := c.(*cache.RedisCache); ok {
		return "cache(redis)"
	}
	return "cache(memory)"
}
