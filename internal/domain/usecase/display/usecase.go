package display

import (
	"context"

	"weather-api/internal/domain/model"
)

type UseCase interface {
	// DisplayByCity fetches the current weather for a city and renders it for a weather panel
	DisplayByCity(ctx context.Context, city string) model.Display
}
