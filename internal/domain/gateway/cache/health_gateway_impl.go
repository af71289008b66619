package cache

import (
	"context"
	"time"

	"weather-api/internal/domain/model"
	"weather-api/pkg/redis"
)

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status, details := gateway.client.Health(ctx)
	if status == redis.StatusUp {
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
}
