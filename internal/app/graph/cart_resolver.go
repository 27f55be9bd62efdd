package graph

import (
	"context"
	"math"

	graphql "github.com/graph-gophers/graphql-go"
	apperrors "github.com/ikkim/cart-backend/internal/errors"
	"github.com/ikkim/cart-backend/pkg/money"
)

// CartResolver resolves Cart fields. Each aggregate field reads the items
// from storage on its own.
type CartResolver struct {
	root *Resolver
	id   string
}

func (c *CartResolver) ID() graphql.ID {
	return graphql.ID(c.id)
}

func (c *CartResolver) Items(ctx context.Context) ([]*CartItemResolver, error) {
	items, err := c.root.carts.ListItems(ctx, c.id)
	if err != nil {
		return nil, apperrors.Wrap(err, "cart items")
	}

	out := make([]*CartItemResolver, 0, len(items))
	for i := range items {
		out = append(out, &CartItemResolver{item: items[i], money: c.root.money})
	}
	return out, nil
}

func (c *CartResolver) TotalItems(ctx context.Context) (int32, error) {
	total, err := c.root.carts.TotalItems(ctx, c.id)
	if err != nil {
		return 0, apperrors.Wrap(err, "cart items")
	}
	return toInt32("totalItems", total)
}

// toInt32 narrows v to the GraphQL Int range, failing instead of wrapping.
func toInt32(field string, v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, apperrors.OutOfRange(field, int64(v))
	}
	return int32(v), nil
}

func (c *CartResolver) SubTotal(ctx context.Context) (*MoneyResolver, error) {
	amount, err := c.root.carts.SubTotal(ctx, c.id)
	if err != nil {
		return nil, apperrors.Wrap(err, "cart items")
	}
	return &MoneyResolver{m: c.root.money.New(amount)}, nil
}

// MoneyResolver resolves Money fields.
type MoneyResolver struct {
	m money.Money
}

func (m *MoneyResolver) Amount() float64 {
	return m.m.Amount
}

func (m *MoneyResolver) Formatted() string {
	return m.m.Formatted
}
