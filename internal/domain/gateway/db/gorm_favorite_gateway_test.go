package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "favorites.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&entity.Favorite{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seed(t *testing.T, gateway *GormFavoriteGateway, cities ...string) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// inserted newest first so ordering comes from created_at, not insertion order
	for i := len(cities) - 1; i >= 0; i-- {
		_, err := gateway.Create(context.Background(), entity.Favorite{
			ID:        "id-" + cities[i],
			City:      cities[i],
			CityKey:   cities[i],
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to seed %s: %v", cities[i], err)
		}
	}
}

func TestFindAllOrdersByCreationAndPages(t *testing.T) {
	gateway := NewGormFavoriteGateway(newTestDB(t))
	seed(t, gateway, "lisbon", "oslo", "lima")
	ctx := context.Background()

	all, err := gateway.FindAll(ctx, 0, 10)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(all) != 3 || all[0].City != "lisbon" || all[1].City != "oslo" || all[2].City != "lima" {
		t.Fatalf("expected oldest first, got %+v", all)
	}

	page, err := gateway.FindAll(ctx, 1, 1)
	if err != nil || len(page) != 1 || page[0].City != "oslo" {
		t.Fatalf("unexpected page %+v err=%v", page, err)
	}

	count, err := gateway.CountAll(ctx)
	if err != nil || count != 3 {
		t.Fatalf("expected 3 rows, got %d err=%v", count, err)
	}
}

func TestFindByCityKey(t *testing.T) {
	gateway := NewGormFavoriteGateway(newTestDB(t))
	seed(t, gateway, "paris")
	ctx := context.Background()

	found, err := gateway.FindByCityKey(ctx, "paris")
	if err != nil || found == nil || found.ID != "id-paris" {
		t.Fatalf("expected paris, got %+v err=%v", found, err)
	}

	missing, err := gateway.FindByCityKey(ctx, "atlantis")
	if err != nil || missing != nil {
		t.Fatalf("expected nil without error for a missing city, got %+v err=%v", missing, err)
	}
}

func TestCreateRejectsDuplicateCityKey(t *testing.T) {
	gateway := NewGormFavoriteGateway(newTestDB(t))
	seed(t, gateway, "tokyo")

	_, err := gateway.Create(context.Background(), entity.Favorite{ID: "other", City: "Tokyo", CityKey: "tokyo"})
	if err == nil {
		t.Fatal("expected unique index violation")
	}
}

func TestDeleteByCityKeyReportsRowsAffected(t *testing.T) {
	gateway := NewGormFavoriteGateway(newTestDB(t))
	seed(t, gateway, "rome")
	ctx := context.Background()

	removed, err := gateway.DeleteByCityKey(ctx, "rome")
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v err=%v", removed, err)
	}
	removed, err = gateway.DeleteByCityKey(ctx, "rome")
	if err != nil || removed {
		t.Fatalf("expected nothing to remove, got %v err=%v", removed, err)
	}
}

func TestGormHealth(t *testing.T) {
	db := newTestDB(t)
	gateway := NewGormHealthDBGateway(db)

	if health := gateway.Health(context.Background()); health.Status != model.StatusUp {
		t.Fatalf("expected UP, got %+v", health)
	}

	sqlDB, _ := db.DB()
	_ = sqlDB.Close()
	if health := gateway.Health(context.Background()); health.Status != model.StatusDown {
		t.Fatalf("expected DOWN after close, got %+v", health)
	}
}
