package favorite

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/util/numberutils"
)

const (
	maxPageSize = 100
	citiesBatch = 50
)

type favoriteUseCase struct {
	gateway db.FavoriteGateway
}

func NewFavoriteUseCase(gateway db.FavoriteGateway) UseCase {
	return &favoriteUseCase{gateway: gateway}
}

func (uc *favoriteUseCase) FindAll(ctx context.Context, page int, size int) (*model.Page[entity.Favorite], error) {
	if page < 0 {
		page = 0
	}
	size = numberutils.ClampInt(size, 1, maxPageSize)

	favorites, err := uc.gateway.FindAll(ctx, page*size, size)
	if err != nil {
		return nil, err
	}
	total, err := uc.gateway.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []entity.Favorite{}
	}
	return model.NewPage(favorites, page, size, total), nil
}

func (uc *favoriteUseCase) Add(ctx context.Context, city string) (*entity.Favorite, bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, false, ErrEmptyCity
	}
	key := cityKey(city)

	existing, err := uc.gateway.FindByCityKey(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := uc.gateway.Create(ctx, entity.Favorite{
		ID:      uuid.NewString(),
		City:    city,
		CityKey: key,
	})
	if err != nil {
		// lost a race on the unique key, the other insert wins
		if existing, findErr := uc.gateway.FindByCityKey(ctx, key); findErr == nil && existing != nil {
			return existing, false, nil
		}
		return nil, false, err
	}

	log.Info(msg.GetMessage("favorite.added", created.City, created.ID))
	return created, true, nil
}

func (uc *favoriteUseCase) Remove(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrEmptyCity
	}

	removed, err := uc.gateway.DeleteByCityKey(ctx, cityKey(city))
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}

	log.Info(msg.GetMessage("favorite.removed", city))
	return nil
}

func (uc *favoriteUseCase) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	for offset := 0; ; offset += citiesBatch {
		favorites, err := uc.gateway.FindAll(ctx, offset, citiesBatch)
		if err != nil {
			return nil, err
		}
		for _, f := range favorites {
			cities = append(cities, f.City)
		}
		if len(favorites) < citiesBatch {
			return cities, nil
		}
	}
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
