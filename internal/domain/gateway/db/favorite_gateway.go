package db

import (
	"context"

	"weather-api/internal/domain/entity"
)

type FavoriteGateway interface {
	FindAll(ctx context.Context, offset int, limit int) ([]entity.Favorite, error)
	CountAll(ctx context.Context) (int64, error)

	// FindByCityKey returns nil without error when no favorite matches
	FindByCityKey(ctx context.Context, cityKey string) (*entity.Favorite, error)

	Create(ctx context.Context, favorite entity.Favorite) (*entity.Favorite, error)

	// DeleteByCityKey reports whether a row was removed
	DeleteByCityKey(ctx context.Context, cityKey string) (bool, error)
}
