package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ikkim/cart-backend/internal/app/model"
	"github.com/ikkim/cart-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemRepository interface {
	FindByCartID(ctx context.Context, cartID string) ([]model.CartItem, error)
	FindByKey(ctx context.Context, cartID, itemID string) (*model.CartItem, error)
	UpsertIncrement(ctx context.Context, item *model.CartItem, delta int) error
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository {
	return &cartItemRepository{db: db}
}

// FindByCartID returns the items of a cart in storage order.
func (r *cartItemRepository) FindByCartID(ctx context.Context, cartID string) ([]model.CartItem, error) {
	logger.Debug("Finding cart items by cart ID in database", map[string]interface{}{
		"cart_id": cartID,
	})

	var items []model.CartItem
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		logger.Error("Failed to find cart items by cart ID in database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}

	logger.Debug("Cart items found by cart ID in database", map[string]interface{}{
		"cart_id": cartID,
		"count":   len(items),
	})
	return items, nil
}

// FindByKey returns the single item stored under (itemID, cartID), or
// gorm.ErrRecordNotFound.
func (r *cartItemRepository) FindByKey(ctx context.Context, cartID, itemID string) (*model.CartItem, error) {
	fields := map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
	}
	logger.Debug("Finding cart item by key in database", fields)

	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("Cart item not found in database", fields)
		} else {
			logger.Error("Failed to find cart item by key in database", err, fields)
		}
		return nil, err
	}

	logger.Debug("Cart item found in database", fields)
	return &item, nil
}

// UpsertIncrement inserts item, or when (id, cart_id) already exists adds delta
// to the stored quantity. It is a single statement; other columns are untouched
// on conflict.
func (r *cartItemRepository) UpsertIncrement(ctx context.Context, item *model.CartItem, delta int) error {
	fields := map[string]interface{}{
		"cart_id":  item.CartID,
		"item_id":  item.ID,
		"quantity": item.Quantity,
		"delta":    delta,
	}
	logger.Debug("Upserting cart item in database", fields)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}, {Name: "cart_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + ?", delta),
				"updated_at": time.Now(),
			}),
		}).
		Create(item).Error
	if err != nil {
		logger.Error("Failed to upsert cart item in database", err, fields)
		return err
	}

	logger.Debug("Cart item upserted in database", fields)
	return nil
}
