package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"movie-catalog-backend/internal/config"
	infraCache "movie-catalog-backend/internal/infrastructure/cache"
	"movie-catalog-backend/internal/infrastructure/database"
	"movie-catalog-backend/internal/shared/middleware"
	pkgdb "movie-catalog-backend/pkg/database"

	actorHandler "movie-catalog-backend/internal/domains/actor/handler"
	actorRepo "movie-catalog-backend/internal/domains/actor/repository"
	actorService "movie-catalog-backend/internal/domains/actor/service"
	castHandler "movie-catalog-backend/internal/domains/cast/handler"
	castRepo "movie-catalog-backend/internal/domains/cast/repository"
	castService "movie-catalog-backend/internal/domains/cast/service"
	movieHandler "movie-catalog-backend/internal/domains/movie/handler"
	movieRepo "movie-catalog-backend/internal/domains/movie/repository"
	movieService "movie-catalog-backend/internal/domains/movie/service"
	reviewHandler "movie-catalog-backend/internal/domains/review/handler"
	reviewRepo "movie-catalog-backend/internal/domains/review/repository"
	reviewService "movie-catalog-backend/internal/domains/review/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the application's dependency graph.
// Build order: config, infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Redis       *infraCache.RedisClient // nil when disabled or unreachable
	TxManager   TxRunner
	RateLimiter middleware.Limiter

	// Repositories
	Repos Repositories

	// Services
	MovieService  movieService.ServiceInterface
	ActorService  actorService.ServiceInterface
	ReviewService reviewService.ServiceInterface
	CastService   castService.ServiceInterface

	// Handlers
	MovieHandler  *movieHandler.MovieHandler
	ActorHandler  *actorHandler.ActorHandler
	ReviewHandler *reviewHandler.ReviewHandler
	CastHandler   *castHandler.CastHandler

	stopMonitor context.CancelFunc
	stopSweep   context.CancelFunc
}

// Repositories are the data access implementations the services run on.
type Repositories struct {
	Movies  movieRepo.Repository
	Actors  actorRepo.Repository
	Reviews reviewRepo.ReviewRepository
	Cast    castRepo.Repository
}

// TxRunner runs a unit of work atomically.
type TxRunner interface {
	RunInTx(ctx context.Context, fn pkgdb.TxFunc) error
}

// ========================================
// CONSTRUCTORS
// ========================================

// NewContainer connects to PostgreSQL (and Redis when enabled) and wires the
// full graph on top of them.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.App.Environment).Msg("[Container] Initializing")

	// STEP 1: Database
	db := database.NewPostgresDB(cfg.DBConfig())

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	// STEP 2: Repositories and transaction manager share the pool
	repos := Repositories{
		Movies:  movieRepo.NewPostgresRepository(db.Pool),
		Actors:  actorRepo.NewPostgresRepository(db.Pool),
		Reviews: reviewRepo.NewPostgresRepository(db.Pool),
		Cast:    castRepo.NewPostgresRepository(db.Pool),
	}

	c := Build(cfg, repos, pkgdb.NewTxManager(db.Pool))
	c.DB = db

	// STEP 3: Redis backs rate limiting when available, failures are non-critical
	c.initRateLimiter(ctx)

	// STEP 4: Optional pool monitor
	if cfg.Database.MonitorInterval > 0 {
		monitorCtx, stop := context.WithCancel(context.Background())
		c.stopMonitor = stop
		go db.MonitorPoolHealth(monitorCtx, cfg.Database.MonitorInterval)
	}

	log.Info().Msg("[Container] Initialized")
	return c, nil
}

// Build wires services and handlers over the given repositories. The rate
// limiter starts process-local with per-client buckets.
func Build(cfg *config.Config, repos Repositories, tx TxRunner) *Container {
	c := &Container{
		Config:    cfg,
		TxManager: tx,
		Repos:     repos,
	}

	if cfg.RateLimit.Enabled {
		local := middleware.NewLocalLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		sweepCtx, stop := context.WithCancel(context.Background())
		c.stopSweep = stop
		go local.Run(sweepCtx, cfg.RateLimit.Window)
		c.RateLimiter = local
	}

	c.initServices()
	c.initHandlers()
	return c
}

func (c *Container) initServices() {
	c.MovieService = movieService.NewMovieService(c.Repos.Movies, c.Repos.Cast, c.TxManager)
	c.ActorService = actorService.NewActorService(c.Repos.Actors, c.Repos.Cast, c.TxManager)
	c.ReviewService = reviewService.NewReviewService(c.Repos.Reviews, c.Repos.Movies, c.TxManager)
	c.CastService = castService.NewCastService(c.Repos.Cast)
}

func (c *Container) initHandlers() {
	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService)
	c.ActorHandler = actorHandler.NewActorHandler(c.ActorService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CastHandler = castHandler.NewCastHandler(c.CastService)
}

func (c *Container) initRateLimiter(ctx context.Context) {
	cfg := c.Config
	if !cfg.Redis.Enabled {
		return
	}

	rc := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("[Container] Redis unavailable, using in-process rate limiter")
		_ = rc.Close()
		return
	}
	c.Redis = rc

	if cfg.RateLimit.Enabled {
		c.RateLimiter = middleware.NewWindowLimiter(rc, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
}

// ========================================
// HEALTH
// ========================================

var errNotConnected = errors.New("not connected")

// PingDatabase reports whether PostgreSQL answers.
func (c *Container) PingDatabase(ctx context.Context) error {
	if c.DB == nil {
		return errNotConnected
	}
	return c.DB.HealthCheck(ctx)
}

// PingRedis returns errNotConnected when Redis is not in use.
func (c *Container) PingRedis(ctx context.Context) error {
	if c.Redis == nil {
		return errNotConnected
	}
	return c.Redis.HealthCheck(ctx)
}

// Cleanup releases the pool and the Redis client.
func (c *Container) Cleanup() {
	log.Info().Msg("[Container] Cleaning up")

	if c.stopMonitor != nil {
		c.stopMonitor()
	}
	if c.stopSweep != nil {
		c.stopSweep()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("[Container] Failed to close Redis")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
