package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/favorite"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"
)

const warmupLockKey = "weather_warmup"

// WarmupSchedulerConfig holds configuration for the cache warm-up scheduler
type WarmupSchedulerConfig struct {
	CronExpression string
	Cities         []string
	LockTTL        time.Duration
	RunTimeout     time.Duration
}

// WarmupScheduler periodically refreshes current weather and forecasts so cached entries stay hot
type WarmupScheduler struct {
	cron            *cron.Cron
	weatherUseCase  weather.UseCase
	favoriteUseCase favorite.UseCase
	redisClient     *redis.Client
	config          *WarmupSchedulerConfig
}

// NewWarmupScheduler creates the scheduler. favoriteUseCase and redisClient may be nil;
// without a redis client every replica runs the job.
func NewWarmupScheduler(weatherUseCase weather.UseCase, favoriteUseCase favorite.UseCase, redisClient *redis.Client, config WarmupSchedulerConfig) *WarmupScheduler {
	if config.LockTTL <= 0 {
		config.LockTTL = 10 * time.Minute
	}
	if config.RunTimeout <= 0 {
		config.RunTimeout = 5 * time.Minute
	}
	return &WarmupScheduler{
		cron:            cron.New(),
		weatherUseCase:  weatherUseCase,
		favoriteUseCase: favoriteUseCase,
		redisClient:     redisClient,
		config:          &config,
	}
}

// InitWarmupScheduleTasks registers the warm-up job and starts the cron
func (s *WarmupScheduler) InitWarmupScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}
	s.cron.Start()
	log.Info(msg.GetMessage("warmup.cron.registered", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one warm-up, guarded by a distributed lock when redis is available
func (s *WarmupScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), s.config.RunTimeout)
	defer cancel()

	log.Info(msg.GetMessage("warmup.cron.start"), zap.String("request_id", requestID))

	run := func() error {
		warmed, failed := s.Warmup(ctx, requestID)
		log.Info(msg.GetMessage("warmup.cron.end", warmed, failed), zap.String("request_id", requestID))
		return nil
	}

	if s.redisClient == nil {
		_ = run()
		return
	}

	opts := redis.DefaultLockOptions().WithTTL(s.config.LockTTL).WithLockNamespace("weather_schedules")
	err := redis.LockWithFunc(ctx, s.redisClient, warmupLockKey, opts, run)
	if errors.Is(err, redis.ErrLockHeld) {
		log.Info(msg.GetMessage("warmup.cron.skipped"), zap.String("request_id", requestID))
		return
	}
	if err != nil {
		log.Error(msg.GetMessage("warmup.cron.failed", err), zap.String("request_id", requestID), zap.Error(err))
	}
}

// Warmup refreshes every city and returns how many lookups succeeded and failed.
// Lookups bypass cached bodies so every entry is rewritten with a fresh TTL.
func (s *WarmupScheduler) Warmup(ctx context.Context, requestID string) (warmed int, failed int) {
	ctx = api.WithRefresh(ctx)

	for _, city := range s.cities(ctx, requestID) {
		query := model.NewCityQuery(city, model.UnitsMetric)

		for _, lookup := range []struct {
			name  string
			fetch func(context.Context, model.CityQuery) model.Result
		}{
			{name: "current", fetch: s.weatherUseCase.CurrentByCity},
			{name: "forecast", fetch: s.weatherUseCase.ForecastByCity},
		} {
			result := lookup.fetch(ctx, query)
			if result.Success {
				warmed++
				continue
			}
			failed++
			log.Warn(msg.GetMessage("warmup.city.failed", lookup.name, city, result.Error),
				zap.String("request_id", requestID),
				zap.String("city", city))
		}

		if ctx.Err() != nil {
			return warmed, failed
		}
	}
	return warmed, failed
}

// cities merges configured and favorite cities, case-insensitively de-duplicated
func (s *WarmupScheduler) cities(ctx context.Context, requestID string) []string {
	candidates := append([]string(nil), s.config.Cities...)

	if s.favoriteUseCase != nil {
		favorites, err := s.favoriteUseCase.Cities(ctx)
		if err != nil {
			log.Warn(msg.GetMessage("warmup.favorites.failed", err),
				zap.String("request_id", requestID), zap.Error(err))
		}
		candidates = append(candidates, favorites...)
	}

	seen := make(map[string]struct{}, len(candidates))
	cities := make([]string, 0, len(candidates))
	for _, city := range candidates {
		city = strings.TrimSpace(city)
		key := strings.ToLower(city)
		if city == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cities = append(cities, city)
	}
	return cities
}

// Stop gracefully stops the scheduler
func (s *WarmupScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
