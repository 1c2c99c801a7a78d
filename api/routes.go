package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/barterhub/barter-api/api/admin"
	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/conversations"
	"github.com/barterhub/barter-api/api/health"
	"github.com/barterhub/barter-api/api/items"
	"github.com/barterhub/barter-api/api/middleware"
	"github.com/barterhub/barter-api/api/types"
	"github.com/barterhub/barter-api/api/version"
	_ "github.com/barterhub/barter-api/docs/swagger"
	cachesvc "github.com/barterhub/barter-api/internal/services/cache"
	conversationsService "github.com/barterhub/barter-api/internal/services/conversations"
	"github.com/barterhub/barter-api/internal/services/images"
	itemsService "github.com/barterhub/barter-api/internal/services/items"
	usersService "github.com/barterhub/barter-api/internal/services/users"
	"github.com/barterhub/barter-api/pkg/config"
	"github.com/barterhub/barter-api/pkg/logger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.DB != nil && deps.DB.DB != nil {
		if err := initializeServices(deps, cfg); err != nil {
			return err
		}
	}

	// Auth endpoints get a tight limit because login is bcrypt-bound
	authGroup := v1.Group("/auth")
	authGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	auth.RegisterRoutes(authGroup, deps)

	if deps.ItemService != nil {
		searchCache := middleware.ResponseCache(middleware.CacheConfig{
			Cache:   deps.Cache,
			TTL:     deps.SearchCacheTTL,
			Enabled: deps.Cache != nil && deps.SearchCacheTTL > 0,
		})

		itemsGroup := v1.Group("/items")
		itemsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		items.RegisterRoutes(itemsGroup, deps, searchCache)

		// Index rebuilds are rare, heavy operations
		adminGroup := v1.Group("/admin")
		adminGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2))
		admin.RegisterRoutes(adminGroup, deps)
	}

	if deps.ConversationService != nil {
		conversationsGroup := v1.Group("/conversations")
		conversationsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		conversations.RegisterRoutes(conversationsGroup, deps)
	}

	return nil
}

// initializeServices wires the default service implementations for any
// dependency not already set.
func initializeServices(deps *types.Dependencies, cfg *config.Config) error {
	db := deps.DB.DB

	if deps.ItemService == nil {
		repo := itemsService.NewRepository(db, itemsService.WithMaxPageSize(cfg.Search.MaxPageSize))
		deps.ItemService = itemsService.NewService(repo)
	}

	if deps.UserService == nil {
		deps.UserService = usersService.NewService(
			usersService.NewRepository(db),
			cfg.Auth.JWTSecret,
			cfg.Auth.TokenTTL,
		)
	}

	if deps.ConversationService == nil {
		deps.ConversationService = conversationsService.NewService(db)
	}

	if deps.Cache == nil && cfg.Search.CacheEnabled {
		switch cfg.Cache.Backend {
		case "redis":
			redisCache, err := cachesvc.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
			if err != nil {
				return fmt.Errorf("connecting cache backend: %w", err)
			}
			deps.Cache = redisCache
		default:
			deps.Cache = cachesvc.NewMemoryCache()
		}
		deps.SearchCacheTTL = cfg.Search.CacheTTL
	}

	if deps.Uploader == nil && cfg.Storage.Bucket != "" {
		uploader, err := images.NewS3Uploader(images.Config{
			AccessKey:     cfg.Storage.AccessKey,
			SecretKey:     cfg.Storage.SecretKey,
			Bucket:        cfg.Storage.Bucket,
			Region:        cfg.Storage.Region,
			Endpoint:      cfg.Storage.Endpoint,
			PublicBaseURL: cfg.Storage.PublicBaseURL,
			Folder:        cfg.Storage.Folder,
		})
		if err != nil {
			logger.Warn("image storage disabled", zap.Error(err))
		} else {
			deps.Uploader = uploader
		}
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success": false,
			"error":   "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
