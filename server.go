package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/tracking_backend/config"
	"github.com/mmdatafocus/tracking_backend/fixtures"
	"github.com/mmdatafocus/tracking_backend/handlers"
	"github.com/mmdatafocus/tracking_backend/middlewares"
	"github.com/mmdatafocus/tracking_backend/store"
	"github.com/mmdatafocus/tracking_backend/tracking"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func customNotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}

// newRouter wires middlewares and routes around svc.
func newRouter(settings config.Settings, svc *tracking.Service, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.CorrelationMiddleware())
	r.Use(middlewares.CorsMiddleware(settings.Production, settings.AllowedOrigins))

	// Optional rate limiting.
	// Env:
	// - RATE_LIMIT_ENABLED=true
	// - RATE_LIMIT_WINDOW_SECONDS=60
	// - RATE_LIMIT_MAX_REQUESTS=600
	if settings.RateLimitEnabled {
		if settings.RedisAddress == "" {
			logger.WithFields(logrus.Fields{"field": "rateLimit"}).Warn("RATE_LIMIT_ENABLED=true but REDIS_ADDRESS not set; rate limiting disabled")
		} else {
			client := redis.NewClient(&redis.Options{Addr: settings.RedisAddress})
			rateLimiter := middlewares.NewRateLimiter(client, settings.RateLimitRequests, settings.RateLimitWindow)
			r.Use(rateLimiter.RateLimitMiddleware)
		}
	}

	r.Use(middlewares.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	handlers.RegisterRoutes(r, svc, config.GetRedisLock)
	r.NoRoute(customNotFoundHandler)
	return r
}

func main() {
	settings := config.Load()
	logger := config.GetLogger()

	if settings.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Shutdown coordination.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	recordStore := store.New()
	generator := fixtures.NewGenerator(settings.FixtureSeed, settings.FixtureBaseDate)
	svc := tracking.NewService(recordStore, generator, settings.MaxGenerateCount)
	if _, err := svc.Regenerate(sigCtx, settings.InitialRecords); err != nil {
		logger.WithFields(logrus.Fields{"field": "startup"}).Fatal("initial fixture generation failed: " + err.Error())
	}
	logger.WithFields(logrus.Fields{
		"field":   "startup",
		"records": recordStore.Len(),
		"seed":    settings.FixtureSeed,
	}).Info("fixtures generated")

	srv := &http.Server{
		Addr:    ":" + settings.Port,
		Handler: newRouter(settings, svc, logger),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	// Redis is optional; connect after the port is open.
	redisCtx, cancelRedis := context.WithCancel(sigCtx)
	defer cancelRedis()
	if settings.RedisAddress != "" {
		go func() {
			if err := config.ConnectRedisWithRetry(redisCtx, settings.RedisAddress); err != nil && !errors.Is(err, context.Canceled) {
				config.LogError(logger, "server.go", "main", "ConnectRedisWithRetry", settings.RedisAddress, err)
			}
		}()
	}

	logger.WithFields(logrus.Fields{
		"info": "Server started",
	}).Info("listening on http://localhost:", settings.Port, "/")

	// Block until shutdown or server error.
	select {
	case <-sigCtx.Done():
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	cancelRedis()

	// Drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}

	config.CloseRedis()
}
