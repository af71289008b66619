package health

import (
	"context"

	"weather-api/internal/domain/gateway/cache"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
}

// NewHealthUseCase builds the use case. A nil gateway marks that component as disabled.
func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := model.DisabledComponent()
	if useCase.dbGateway != nil {
		dbHealth = useCase.dbGateway.Health(ctx)
	}

	cacheHealth := model.DisabledComponent()
	if useCase.cacheGateway != nil {
		cacheHealth = useCase.cacheGateway.Health(ctx)
	}

	return model.NewHealthResponse(dbHealth, cacheHealth)
}
