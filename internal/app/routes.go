package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novinshop/core/internal/middleware"
	"github.com/novinshop/core/internal/modules/content/article"
	"github.com/novinshop/core/internal/modules/recommend"
	"github.com/novinshop/core/internal/pkg/kv"
	pkgredis "github.com/novinshop/core/internal/pkg/redis"
	"github.com/novinshop/core/internal/pkg/response"
	"go.uber.org/zap"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "novinshop-reco",
		"version": "1.0.0",
	}

	api := r.Group("/api/v2")
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.Idempotence(rc.Raw()))
	// Reader-personalized routes vary per X-Reader-ID, keep them out of the
	// shared response cache.
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		SkipPaths: []string{"/api/v2/recommendations*"},
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	// Article corpus. Writes purge the shared response cache so cached
	// lists do not serve stale content for a full TTL.
	articleSvc := article.NewService(a.db)
	purgeCache := func() {
		if n, err := middleware.PurgeHTTPCache(context.Background(), rc.Raw()); err != nil {
			a.logger.Warn("http cache purge failed", zap.Error(err))
		} else if n > 0 {
			a.logger.Info("purged cached responses", zap.Int64("count", n))
		}
	}
	article.NewHandler(articleSvc, purgeCache).RegisterRoutes(api, authMW)

	// Recommendation engine, persisting reader state in Redis.
	engine := recommend.NewEngine(kv.NewRedisStore(rc.Raw()), recommend.Options{
		Namespace: a.cfg.Recommend.Namespace,
		Logger:    a.logger,
	})
	recommend.NewHandler(
		engine,
		articleSvc,
		articleSvc,
		a.cfg.Recommend.FeedLimit,
		a.cfg.Recommend.CorpusLimit,
		a.cfg.Recommend.Weights,
	).RegisterRoutes(api)
}
