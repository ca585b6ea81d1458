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

	"github.com/aetherx/backend/handlers"
	"github.com/aetherx/backend/internal/assistant"
	"github.com/aetherx/backend/internal/chat"
	"github.com/aetherx/backend/internal/config"
	"github.com/aetherx/backend/internal/database"
	"github.com/aetherx/backend/internal/launch"
	"github.com/aetherx/backend/internal/newsletter"
	"github.com/aetherx/backend/internal/status"
	"github.com/aetherx/backend/pkg/logger"
	"github.com/aetherx/backend/pkg/metrics"
	"github.com/aetherx/backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v llm_key_set=%v", cfg.Mongo.URL != "", cfg.Redis.Host != "", cfg.LLM.APIKey != "")

	r := gin.New()
	r.Use(middleware.CORS(cfg.CORS.Origins))
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "uptime": time.Since(startTime).String()})
	})

	ctx := context.Background()

	// Connect to MongoDB with retry/backoff to tolerate startup races.
	// Every collection lives here, so a failed connection is fatal.
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.Connect(ctx, cfg.Mongo.URL, cfg.Mongo.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.Mongo.Database)

	statusSvc := status.NewService(status.NewMongoRepository(db.Collection("status_checks")))
	newsletterSvc := newsletter.NewService(newsletter.NewMongoRepository(db.Collection("newsletter_subscriptions")))
	launchSvc := launch.NewService(launch.NewMongoRepository(db.Collection("launch_config")))

	// Prefer Redis for chat history when configured (fast, in-memory);
	// fall back to the Mongo collection otherwise.
	var chatRepo chat.Repository = chat.NewMongoRepository(db.Collection("chat_messages"))
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := rdb.Ping(ctx).Err(); err == nil {
			chatRepo = chat.NewRedisRepository(rdb, "chat:")
			logger.Infof("Using Redis for chat history storage: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s), using MongoDB for chat history: %v", cfg.Redis.Host, cfg.Redis.Port, err)
		}
	}

	gateway := assistant.NewOpenAIGateway(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Timeout)
	chatSvc := chat.NewService(chatRepo, gateway)

	api := r.Group("/api")
	handlers.NewAPIHandler(statusSvc).Register(api)
	handlers.NewNewsletterHandler(newsletterSvc).Register(api)
	handlers.NewChatHandler(chatSvc).Register(api)
	handlers.NewLaunchHandler(launchSvc).Register(api)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting AetherX API on %s (env=%s)", addr, cfg.Server.Environment)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
