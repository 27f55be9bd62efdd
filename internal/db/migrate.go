package db

import (
	"github.com/ikkim/cart-backend/internal/app/model"
	"github.com/ikkim/cart-backend/pkg/logger"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents first.
func Models() []interface{} {
	return []interface{}{
		&model.Cart{},
		&model.CartItem{},
	}
}

// Migrate runs database migrations
func Migrate(conn *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := Models()
	if err := conn.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
