package repository

import (
	"context"

	"github.com/ikkim/cart-backend/internal/app/model"
	"github.com/ikkim/cart-backend/pkg/logger"
	"gorm.io/gorm"
)

// CartRepository exposes lookup and creation as separate capabilities;
// callers compose them when a read should create.
type CartRepository interface {
	FindByID(ctx context.Context, id string) (*model.Cart, error)
	Create(ctx context.Context, cart *model.Cart) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// FindByID returns gorm.ErrRecordNotFound when the cart does not exist.
func (r *cartRepository) FindByID(ctx context.Context, id string) (*model.Cart, error) {
	logger.Debug("Finding cart by ID in database", map[string]interface{}{
		"cart_id": id,
	})

	var cart model.Cart
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cart).Error; err != nil {
		return nil, err
	}

	logger.Debug("Cart found by ID in database", map[string]interface{}{
		"cart_id": cart.ID,
	})
	return &cart, nil
}

func (r *cartRepository) Create(ctx context.Context, cart *model.Cart) error {
	logger.Debug("Creating cart in database", map[string]interface{}{
		"cart_id": cart.ID,
	})

	if err := r.db.WithContext(ctx).Omit("Items").Create(cart).Error; err != nil {
		logger.Error("Failed to create cart in database", err, map[string]interface{}{
			"cart_id": cart.ID,
		})
		return err
	}

	logger.Debug("Cart created in database", map[string]interface{}{
		"cart_id": cart.ID,
	})
	return nil
}
