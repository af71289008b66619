package favorite

import (
	"context"
	"errors"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

var (
	ErrNotFound  = errors.New("favorite not found")
	ErrEmptyCity = errors.New("city is required")
)

type UseCase interface {
	// FindAll returns one page of favorites, oldest first
	FindAll(ctx context.Context, page int, size int) (*model.Page[entity.Favorite], error)

	// Add stores a city once; created is false when it was already a favorite
	Add(ctx context.Context, city string) (favorite *entity.Favorite, created bool, err error)

	// Remove deletes a favorite, ErrNotFound when the city is not stored
	Remove(ctx context.Context, city string) error

	// Cities returns every favorite city name
	Cities(ctx context.Context) ([]string, error)
}
