package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/ikkim/cart-backend/config"
	"github.com/ikkim/cart-backend/internal/app/repository"
	"github.com/ikkim/cart-backend/internal/app/service"
	"github.com/ikkim/cart-backend/internal/db"
	"github.com/ikkim/cart-backend/pkg/money"
)

type seedItem struct {
	id          string
	name        string
	description string
	price       float64
	quantity    int
}

var demoItems = []seedItem{
	{id: "tshirt", name: "Cotton T-Shirt", description: "Heavyweight crew neck", price: 20, quantity: 2},
	{id: "mug", name: "Coffee Mug", description: "12oz ceramic", price: 12.5, quantity: 1},
	{id: "stickers", name: "Sticker Pack", price: 4.99, quantity: 3},
}

func main() {
	cartID := flag.String("cart", "", "cart id to seed (random when empty)")
	flag.Parse()

	if *cartID == "" {
		*cartID = uuid.NewString()
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Connect database
	conn, err := db.Open(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(conn)

	if err := db.Migrate(conn); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	cartService := service.NewCartService(
		repository.NewCartRepository(conn),
		repository.NewCartItemRepository(conn),
	)
	formatter := money.NewFormatter(cfg.GraphQL.Currency)

	ctx := context.Background()
	fmt.Printf("Seeding cart: %s\n", *cartID)

	for _, it := range demoItems {
		input := service.AddItemInput{
			CartID:   *cartID,
			ID:       it.id,
			Name:     it.name,
			Price:    it.price,
			Quantity: &it.quantity,
		}
		if it.description != "" {
			description := it.description
			input.Description = &description
		}
		if _, err := cartService.AddItem(ctx, input); err != nil {
			log.Fatalf("Failed to add item %s: %v", it.id, err)
		}
		fmt.Printf("  + %s x%d @ %s\n", it.name, it.quantity, formatter.Format(it.price))
	}

	totalItems, err := cartService.TotalItems(ctx, *cartID)
	if err != nil {
		log.Fatal("Failed to count items:", err)
	}
	subTotal, err := cartService.SubTotal(ctx, *cartID)
	if err != nil {
		log.Fatal("Failed to compute subtotal:", err)
	}

	fmt.Println("Seed completed successfully!")
	fmt.Printf("Total items: %d, subtotal: %s\n", totalItems, formatter.Format(subTotal))
}
