package service

import (
	"context"
	"errors"
	"math"

	"github.com/ikkim/cart-backend/internal/app/model"
	"github.com/ikkim/cart-backend/internal/app/repository"
	"github.com/ikkim/cart-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound = errors.New("cart not found")
)

// DefaultQuantity is used when an add request omits the quantity or sends 0.
const DefaultQuantity = 1

type AddItemInput struct {
	CartID      string
	ID          string
	Name        string
	Description *string
	Image       *string
	Price       float64
	Quantity    *int
}

// EffectiveQuantity returns the requested quantity, or DefaultQuantity when it is absent or zero.
func (in AddItemInput) EffectiveQuantity() int {
	if in.Quantity == nil || *in.Quantity == 0 {
		return DefaultQuantity
	}
	return *in.Quantity
}

type CartService interface {
	FindCart(ctx context.Context, id string) (*model.Cart, error)
	CreateCart(ctx context.Context, id string) (*model.Cart, error)
	FindOrCreateCart(ctx context.Context, id string) (*model.Cart, error)
	ListItems(ctx context.Context, cartID string) ([]model.CartItem, error)
	TotalItems(ctx context.Context, cartID string) (int, error)
	SubTotal(ctx context.Context, cartID string) (float64, error)
	AddItem(ctx context.Context, input AddItemInput) (*model.Cart, error)
}

type cartService struct {
	cartRepo     repository.CartRepository
	cartItemRepo repository.CartItemRepository
}

func NewCartService(cartRepo repository.CartRepository, cartItemRepo repository.CartItemRepository) CartService {
	return &cartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
	}
}

func (s *cartService) FindCart(ctx context.Context, id string) (*model.Cart, error) {
	cart, err := s.cartRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		logger.FromContext(ctx).Error("Failed to fetch cart", err, map[string]interface{}{
			"cart_id": id,
		})
		return nil, err
	}
	return cart, nil
}

func (s *cartService) CreateCart(ctx context.Context, id string) (*model.Cart, error) {
	cart := &model.Cart{ID: id}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		logger.FromContext(ctx).Error("Failed to create cart", err, map[string]interface{}{
			"cart_id": id,
		})
		return nil, err
	}

	logger.FromContext(ctx).Info("Cart created", map[string]interface{}{
		"cart_id": id,
	})
	return cart, nil
}

// FindOrCreateCart returns the cart with id, creating an empty one if it does
// not exist yet. A read through this path may therefore write.
func (s *cartService) FindOrCreateCart(ctx context.Context, id string) (*model.Cart, error) {
	cart, err := s.FindCart(ctx, id)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}
	return s.CreateCart(ctx, id)
}

func (s *cartService) ListItems(ctx context.Context, cartID string) ([]model.CartItem, error) {
	items, err := s.cartItemRepo.FindByCartID(ctx, cartID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch cart items", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}
	return items, nil
}

func (s *cartService) TotalItems(ctx context.Context, cartID string) (int, error) {
	items, err := s.ListItems(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return SumQuantities(items), nil
}

func (s *cartService) SubTotal(ctx context.Context, cartID string) (float64, error) {
	items, err := s.ListItems(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return SumAmounts(items), nil
}

// AddItem ensures the cart exists, then inserts the item or increments the
// stored quantity of the existing (item, cart) row. Only quantity changes on
// a repeat add.
func (s *cartService) AddItem(ctx context.Context, input AddItemInput) (*model.Cart, error) {
	log := logger.FromContext(ctx)
	quantity := input.EffectiveQuantity()

	log.Info("Adding item to cart", map[string]interface{}{
		"cart_id":  input.CartID,
		"item_id":  input.ID,
		"quantity": quantity,
	})

	cart, err := s.FindOrCreateCart(ctx, input.CartID)
	if err != nil {
		return nil, err
	}

	item := &model.CartItem{
		ID:          input.ID,
		CartID:      cart.ID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Price:       input.Price,
		Quantity:    quantity,
	}
	if err := s.cartItemRepo.UpsertIncrement(ctx, item, quantity); err != nil {
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"cart_id": cart.ID,
			"item_id": input.ID,
		})
		return nil, err
	}

	log.Info("Item added to cart successfully", map[string]interface{}{
		"cart_id": cart.ID,
		"item_id": input.ID,
	})
	return cart, nil
}

// SumQuantities adds up item quantities, counting an item whose quantity is
// 0 as 1.
func SumQuantities(items []model.CartItem) int {
	total := 0
	for _, item := range items {
		q := item.Quantity
		if q == 0 {
			q = DefaultQuantity
		}
		total += q
	}
	return total
}

// SumAmounts adds up price*quantity over items. A NaN result collapses to 0.
// Finite line totals are accumulated as decimals so the sum of cent-valued
// prices does not pick up float drift.
func SumAmounts(items []model.CartItem) float64 {
	exact := decimal.Zero
	inexact := 0.0
	finite := true
	for _, item := range items {
		inexact += item.LineTotal()
		amount, ok := item.LineAmount()
		if !ok {
			finite = false
			continue
		}
		exact = exact.Add(amount)
	}

	if !finite {
		if math.IsNaN(inexact) {
			return 0
		}
		return inexact
	}
	return exact.InexactFloat64()
}
