package gorm

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weather-api/internal/domain/entity"
	"weather-api/pkg/resource"
)

// Open connects to PostgreSQL using the app.db properties and migrates the schema
func Open() (*gorm.DB, error) {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("fail to get database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(resource.GetInt("app.db.max-open-conns"))
	sqlDB.SetMaxIdleConns(resource.GetInt("app.db.max-idle-conns"))
	sqlDB.SetConnMaxLifetime(resource.GetDurationOrDefault("app.db.conn-max-lifetime", 30*time.Minute))

	if err = db.AutoMigrate(&entity.Favorite{}); err != nil {
		return nil, fmt.Errorf("fail to migrate database: %w", err)
	}
	return db, nil
}
