package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-api/configs"
	"weather-api/docs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	"weather-api/internal/application/schedule"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/cache"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/usecase/display"
	"weather-api/internal/domain/usecase/favorite"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/domain/usecase/weather"
	infracache "weather-api/internal/infra/cache"
	"weather-api/internal/infra/database/gorm"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"
	"weather-api/pkg/resource"
)

// @title Weather API
// @version 2.0.0
// @description Gateway over the OpenWeather data, geocoding and air pollution APIs.
// @BasePath /
func main() {
	env, err := configs.Load()
	if err != nil {
		log.Fatal("fail to load environment", zap.Error(err))
	}
	if err := resource.Init(env.PropertiesFile); err != nil {
		log.Fatal("fail to load properties", zap.Error(err))
	}
	if err := msg.Init(env.MessagesFile); err != nil {
		log.Fatal("fail to load messages", zap.Error(err))
	}
	log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))
	defer log.Sync()

	name := resource.GetStringOrDefault("app.name", env.ApplicationName)
	port := resource.GetStringOrDefault("app.server.port", "8080")
	log.Info(msg.GetMessage("app.start", name, port))

	apiKey := resource.GetString("app.provider.api-key")
	if apiKey == "" {
		log.Fatal(msg.GetMessage("app.missing-api-key"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupErrorHandler(e)
	middleware.SetupDefaults(e)
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	router := e.Group(contextPath)

	var (
		dbHealthGateway    db.HealthDBGateway
		cacheHealthGateway cache.HealthGateway
		responseCache      api.ResponseCache
		favoriteUseCase    favorite.UseCase
		redisClient        *redis.Client
	)

	if resource.GetBool("app.db.enabled") {
		database, err := gorm.Open()
		if err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "database", err), zap.Error(err))
		}
		dbHealthGateway = db.NewGormHealthDBGateway(database)
		favoriteUseCase = favorite.NewFavoriteUseCase(db.NewGormFavoriteGateway(database))
	} else {
		log.Warn(msg.GetMessage("app.db-disabled"))
	}

	if resource.GetBool("app.cache.enabled") {
		redisClient, err = infracache.Open(ctx)
		if err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "cache", err), zap.Error(err))
		}
		defer redisClient.Close()
		cacheHealthGateway = cache.NewRedisHealthGateway(redisClient)
		responseCache = cache.NewRedisResponseCache(redisClient,
			api.CacheCurrent, api.CacheForecast, api.CacheGeocoding, api.CacheAirQuality)
	} else {
		log.Warn(msg.GetMessage("app.cache-disabled"))
	}

	// Init WeatherGateway
	weatherGateway := api.NewWeatherGateway(api.WeatherGatewayConfig{
		DataURL:            resource.GetString("app.provider.data-url"),
		GeoURL:             resource.GetString("app.provider.geo-url"),
		APIKey:             apiKey,
		Timeout:            resource.GetDuration("app.provider.timeout"),
		RateLimit:          resource.GetFloat64("app.provider.rate-limit"),
		RateBurst:          resource.GetInt("app.provider.rate-burst"),
		BreakerFailures:    uint32(resource.GetInt("app.provider.breaker.failures")),
		BreakerOpenTimeout: resource.GetDuration("app.provider.breaker.open-timeout"),
	}, responseCache)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)
	displayUseCase := display.NewDisplayUseCase(weatherGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheHealthGateway)

	// Init Controller
	controller.NewRootController(router, resource.GetString("app.version")).InitRootRoutes()
	controller.NewHealthController(router, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(router, weatherUseCase, displayUseCase).InitWeatherRoutes()
	if favoriteUseCase != nil {
		controller.NewFavoriteController(router, favoriteUseCase).InitFavoriteRoutes()
	}

	docs.SwaggerInfo.BasePath = contextPath + "/"
	router.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	if redisClient != nil {
		warmupScheduler := schedule.NewWarmupScheduler(weatherUseCase, favoriteUseCase, redisClient, schedule.WarmupSchedulerConfig{
			CronExpression: resource.GetString("app.warmup.cron"),
			Cities:         resource.GetStringSlice("app.warmup.cities"),
			LockTTL:        resource.GetDuration("app.warmup.lock-ttl"),
			RunTimeout:     resource.GetDuration("app.warmup.run-timeout"),
		})
		if err := warmupScheduler.InitWarmupScheduleTasks(); err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "warm-up scheduler", err), zap.Error(err))
		}
		defer warmupScheduler.Stop()
	}

	// Start Routes
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.init-failed", "server", err), zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", name))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping", name))

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.init-failed", "shutdown", err), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", name))
}
