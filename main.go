package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SehajBehl/docvault/handlers"
	"github.com/SehajBehl/docvault/internal/config"
	"github.com/SehajBehl/docvault/internal/database"
	dochandler "github.com/SehajBehl/docvault/internal/document/handler"
	docservice "github.com/SehajBehl/docvault/internal/document/service"
	"github.com/SehajBehl/docvault/internal/presence"
	verhandler "github.com/SehajBehl/docvault/internal/version/handler"
	verservice "github.com/SehajBehl/docvault/internal/version/service"
	"github.com/SehajBehl/docvault/pkg/logger"
	"github.com/SehajBehl/docvault/pkg/metrics"
	"github.com/SehajBehl/docvault/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v rate_limit=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	// Connect to Redis early so the rate limiter and presence can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB when configured; otherwise run on the in-memory stores.
	ctx := context.Background()
	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		mongoClient, err = database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			logger.Warnf("could not connect to MongoDB, falling back to in-memory stores: %v", err)
		} else {
			defer func() { _ = mongoClient.Disconnect(ctx) }()
		}
	}

	var versionSvc verservice.Service
	var metaSvc docservice.Service
	if mongoClient != nil {
		db := mongoClient.Database(cfg.MongoDB.Database)
		versionSvc = verservice.NewMongoStore(db.Collection("document_versions"))
		metaSvc = docservice.NewMongoService(db.Collection("documents"))
	} else {
		versionSvc = verservice.NewMemoryStore()
		metaSvc = docservice.NewMemoryService()
	}

	var presenceRepo presence.Repository
	if redisClient != nil {
		presenceRepo = presence.NewRedisRepository(redisClient, "presence:", cfg.Presence.TTL)
	} else {
		presenceRepo = presence.NewMemoryRepository(cfg.Presence.TTL)
	}
	presenceSvc := presence.NewService(presenceRepo)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: configured dependencies must actually be reachable
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}
		if cfg.MongoDB.URI != "" {
			deps["mongo"] = mongoClient != nil
			ready = ready && deps["mongo"]
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			ready = ready && deps["redis"]
		}
		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	verhandler.RegisterVersionRoutes(r, versionSvc, metaSvc)
	dochandler.RegisterDocumentRoutes(r, metaSvc)
	presence.RegisterRoutes(r, presenceSvc)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting docvault on %s (env=%s)", addr, cfg.Server.Environment)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
