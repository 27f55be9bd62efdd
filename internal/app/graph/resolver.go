// Package graph serves the cart GraphQL schema.
package graph

import (
	"context"
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/ikkim/cart-backend/internal/app/service"
	apperrors "github.com/ikkim/cart-backend/internal/errors"
	"github.com/ikkim/cart-backend/pkg/logger"
	"github.com/ikkim/cart-backend/pkg/money"
)

//go:embed schema.graphql
var schemaSDL string

// SchemaSDL returns the schema definition served by the endpoint.
func SchemaSDL() string {
	return schemaSDL
}

// Resolver is the root resolver. Its dependencies are passed in explicitly;
// there is no package-level client.
type Resolver struct {
	carts service.CartService
	money *money.Formatter
}

func NewResolver(carts service.CartService, formatter *money.Formatter) *Resolver {
	return &Resolver{
		carts: carts,
		money: formatter,
	}
}

// NewSchema parses the embedded schema against r.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, r)
}

type cartArgs struct {
	ID graphql.ID
}

// Cart resolves Query.cart. Reading an unknown id creates the cart.
func (r *Resolver) Cart(ctx context.Context, args cartArgs) (*CartResolver, error) {
	cart, err := r.carts.FindOrCreateCart(ctx, string(args.ID))
	if err != nil {
		return nil, apperrors.Wrap(err, "cart")
	}
	return &CartResolver{root: r, id: cart.ID}, nil
}

type AddItemInput struct {
	CartID      graphql.ID
	ID          graphql.ID
	Name        string
	Description *string
	Image       *string
	Price       float64
	Quantity    *int32
}

type addItemArgs struct {
	Input AddItemInput
}

// AddItem resolves Mutation.addItem.
func (r *Resolver) AddItem(ctx context.Context, args addItemArgs) (*CartResolver, error) {
	in := service.AddItemInput{
		CartID:      string(args.Input.CartID),
		ID:          string(args.Input.ID),
		Name:        args.Input.Name,
		Description: args.Input.Description,
		Image:       args.Input.Image,
		Price:       args.Input.Price,
	}
	if args.Input.Quantity != nil {
		q := int(*args.Input.Quantity)
		in.Quantity = &q
	}

	cart, err := r.carts.AddItem(ctx, in)
	if err != nil {
		logger.FromContext(ctx).Warn("addItem failed", map[string]interface{}{
			"cart_id": in.CartID,
			"item_id": in.ID,
			"error":   err.Error(),
		})
		return nil, apperrors.Wrap(err, "add item")
	}
	return &CartResolver{root: r, id: cart.ID}, nil
}
