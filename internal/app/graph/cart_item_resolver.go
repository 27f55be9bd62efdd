package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/ikkim/cart-backend/internal/app/model"
	"github.com/ikkim/cart-backend/pkg/money"
)

// CartItemResolver resolves CartItem fields from an already loaded row. No field does I/O.
type CartItemResolver struct {
	item  model.CartItem
	money *money.Formatter
}

func (i *CartItemResolver) ID() graphql.ID {
	return graphql.ID(i.item.ID)
}

func (i *CartItemResolver) Name() string {
	return i.item.Name
}

func (i *CartItemResolver) Description() *string {
	return i.item.Description
}

func (i *CartItemResolver) Image() *string {
	return i.item.Image
}

func (i *CartItemResolver) Price() float64 {
	return i.item.Price
}

func (i *CartItemResolver) Quantity() (int32, error) {
	return toInt32("quantity", i.item.Quantity)
}

func (i *CartItemResolver) UnitPrice() *MoneyResolver {
	return &MoneyResolver{m: UnitPrice(i.money, i.item)}
}

func (i *CartItemResolver) TotalPrice() *MoneyResolver {
	return &MoneyResolver{m: TotalPrice(i.money, i.item)}
}

// UnitPrice is the item's price as Money.
func UnitPrice(f *money.Formatter, item model.CartItem) money.Money {
	return f.New(item.Price)
}

// TotalPrice is price times quantity as Money.
func TotalPrice(f *money.Formatter, item model.CartItem) money.Money {
	return f.New(item.LineTotal())
}
