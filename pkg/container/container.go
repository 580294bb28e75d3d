package container

import (
	"context"
	"fmt"
	"time"

	"blogging-backend/internal/config"
	infraCache "blogging-backend/internal/infrastructure/cache"
	"blogging-backend/internal/infrastructure/database"
	"blogging-backend/pkg/cache"
	"blogging-backend/pkg/jwt"
	"blogging-backend/pkg/logger"
	"blogging-backend/pkg/password"

	"blogging-backend/internal/domains/author"
	authorHandler "blogging-backend/internal/domains/author/handler"
	authorRepo "blogging-backend/internal/domains/author/repository"
	authorService "blogging-backend/internal/domains/author/service"

	"blogging-backend/internal/domains/blog"
	blogHandler "blogging-backend/internal/domains/blog/handler"
	blogRepo "blogging-backend/internal/domains/blog/repository"
	blogService "blogging-backend/internal/domains/blog/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
// Layers are built in order: infrastructure, repositories, services, handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.MongoDB // nil when built over in-memory repositories
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Hasher     password.Hasher

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo author.Repository
	BlogRepo   blog.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService author.Service
	BlogService   blog.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BlogHandler   *blogHandler.BlogHandler
}

// ========================================
// CONSTRUCTORS
// ========================================

// NewContainer loads configuration, connects MongoDB and Redis and builds
// the full dependency graph
func NewContainer() (*Container, error) {
	logger.Info("Initializing DI container", nil)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewMongoDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := database.EnsureIndexes(ctx, db.DB); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	logger.Info("Database connected", map[string]interface{}{"database": dbConfig.Database})

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.Cache = connectCache(ctx, cfg.Redis)

	// ========================================
	// STEP 3: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.wire()

	logger.Info("DI container initialized", nil)
	return c, nil
}

// NewWithRepositories builds services and handlers over the given
// repositories, with no database or cache connection
func NewWithRepositories(cfg *config.Config, authors author.Repository, blogs blog.Repository) *Container {
	c := &Container{
		Config:     cfg,
		Cache:      cache.Noop{},
		AuthorRepo: authors,
		BlogRepo:   blogs,
	}
	c.wire()
	return c
}

// connectCache falls back to a no-op cache when Redis is disabled or
// unreachable; the cache only saves author lookups
func connectCache(ctx context.Context, cfg config.RedisConfig) cache.Cache {
	if !cfg.Enabled {
		logger.Info("Redis disabled, author cache off", nil)
		return cache.Noop{}
	}

	rc := infraCache.NewRedisCache(cfg.Host, cfg.Password, cfg.DB, cfg.KeyPrefix)
	if err := rc.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed (non-critical), author cache off", map[string]interface{}{
			"host":  cfg.Host,
			"error": err.Error(),
		})
		_ = rc.Close()
		return cache.Noop{}
	}

	logger.Info("Redis connected", map[string]interface{}{"host": cfg.Host})
	return rc
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewMongoRepository(
		c.DB.Collection(database.AuthorsCollection),
		c.Cache,
		c.Config.Redis.AuthorCacheTTL,
	)
	c.BlogRepo = blogRepo.NewMongoRepository(c.DB.Collection(database.BlogsCollection))
}

// wire builds the token manager, services and handlers
func (c *Container) wire() {
	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		jwt.WithPreviousSecrets(c.Config.JWT.PreviousSecrets...),
		jwt.WithTTL(c.Config.JWT.TokenTTL),
	)
	c.Hasher = password.NewBcryptHasher(c.Config.Auth.BcryptCost)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.JWTManager, c.Hasher)
	// The author repository doubles as the blog service's author lookup
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.AuthorRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
}

// ========================================
// HELPER METHODS
// ========================================

// HealthCheck pings MongoDB and, when enabled, Redis.
// Keys are component names, values "ok" or the failure.
func (c *Container) HealthCheck(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{}
	healthy := true

	if c.DB != nil {
		if err := c.DB.Ping(ctx); err != nil {
			status["mongodb"] = err.Error()
			healthy = false
		} else {
			status["mongodb"] = "ok"
		}
	}

	if c.Config.Redis.Enabled {
		if err := c.Cache.Ping(ctx); err != nil {
			// Cache failures degrade lookups but never fail requests
			status["redis"] = err.Error()
		} else {
			status["redis"] = "ok"
		}
	}

	return status, healthy
}

// Cleanup releases connections; called on graceful shutdown
func (c *Container) Cleanup() {
	logger.Info("Cleaning up container resources", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			logger.Error("Failed to close MongoDB", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}
}
