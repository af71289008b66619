package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"weather-api/internal/domain/entity"
)

type GormFavoriteGateway struct {
	DB *gorm.DB
}

var _ FavoriteGateway = (*GormFavoriteGateway)(nil)

func NewGormFavoriteGateway(db *gorm.DB) *GormFavoriteGateway {
	return &GormFavoriteGateway{DB: db}
}

func (gateway *GormFavoriteGateway) FindAll(ctx context.Context, offset int, limit int) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	err := gateway.DB.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

func (gateway *GormFavoriteGateway) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := gateway.DB.WithContext(ctx).Model(&entity.Favorite{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

func (gateway *GormFavoriteGateway) FindByCityKey(ctx context.Context, cityKey string) (*entity.Favorite, error) {
	var favorite entity.Favorite
	err := gateway.DB.WithContext(ctx).Where("city_key = ?", cityKey).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find favorite %s: %w", cityKey, err)
	}
	return &favorite, nil
}

func (gateway *GormFavoriteGateway) Create(ctx context.Context, favorite entity.Favorite) (*entity.Favorite, error) {
	if err := gateway.DB.WithContext(ctx).Create(&favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to create favorite %s: %w", favorite.City, err)
	}
	return &favorite, nil
}

func (gateway *GormFavoriteGateway) DeleteByCityKey(ctx context.Context, cityKey string) (bool, error) {
	result := gateway.DB.WithContext(ctx).Where("city_key = ?", cityKey).Delete(&entity.Favorite{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete favorite %s: %w", cityKey, result.Error)
	}
	return result.RowsAffected > 0, nil
}
