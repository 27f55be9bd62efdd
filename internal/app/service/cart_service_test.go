package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ikkim/cart-backend/internal/app/model"
	"github.com/ikkim/cart-backend/internal/app/repository"
	"github.com/ikkim/cart-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (CartService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartService := NewCartService(
		repository.NewCartRepository(testDB),
		repository.NewCartItemRepository(testDB),
	)
	return cartService, testDB
}

func intPtr(v int) *int { return &v }

func TestCartService_FindCart_NotFound(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	_, err := cartService.FindCart(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_FindOrCreateCart_CreatesOnce(t *testing.T) {
	cartService, testDB := setupCartServiceTest(t)
	ctx := context.Background()

	first, err := cartService.FindOrCreateCart(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", first.ID)

	second, err := cartService.FindOrCreateCart(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", second.ID)

	var count int64
	testDB.Model(&model.Cart{}).Count(&count)
	assert.Equal(t, int64(1), count)

	items, err := cartService.ListItems(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_CreateCart_Duplicate(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.CreateCart(ctx, "c1")
	require.NoError(t, err)

	_, err = cartService.CreateCart(ctx, "c1")
	assert.Error(t, err)
}

func TestCartService_AddItem_CreatesCartAndItem(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()
	desc := "Ceramic"

	cart, err := cartService.AddItem(ctx, AddItemInput{
		CartID:      "c1",
		ID:          "i1",
		Name:        "Mug",
		Description: &desc,
		Price:       10,
		Quantity:    intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", cart.ID)

	items, err := cartService.ListItems(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Ceramic", *items[0].Description)
	assert.Nil(t, items[0].Image)

	subTotal, err := cartService.SubTotal(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, subTotal)
}

func TestCartService_AddItem_IncrementsExisting(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, AddItemInput{CartID: "c1", ID: "i1", Name: "Mug", Price: 10, Quantity: intPtr(2)})
	require.NoError(t, err)

	// Attributes other than quantity are ignored on a repeat add.
	_, err = cartService.AddItem(ctx, AddItemInput{CartID: "c1", ID: "i1", Name: "Cup", Price: 99, Quantity: intPtr(3)})
	require.NoError(t, err)

	items, err := cartService.ListItems(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "Mug", items[0].Name)
	assert.Equal(t, 10.0, items[0].Price)

	subTotal, err := cartService.SubTotal(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, subTotal)
}

func TestCartService_AddItem_QuantitiesAccumulate(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	quantities := []*int{intPtr(4), nil, intPtr(0), intPtr(7), nil}
	for _, q := range quantities {
		_, err := cartService.AddItem(ctx, AddItemInput{CartID: "c1", ID: "i1", Name: "Mug", Price: 1, Quantity: q})
		require.NoError(t, err)
	}

	items, err := cartService.ListItems(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	// 4 + 1 + 1 + 7 + 1
	assert.Equal(t, 14, items[0].Quantity)
}

func TestCartService_AddItem_SameItemIDAcrossCarts(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, AddItemInput{CartID: "c1", ID: "i1", Name: "Mug", Price: 10})
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, AddItemInput{CartID: "c2", ID: "i1", Name: "Mug", Price: 10})
	require.NoError(t, err)

	for _, cartID := range []string{"c1", "c2"} {
		total, err := cartService.TotalItems(ctx, cartID)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	}
}

func TestCartService_TotalItems(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, AddItemInput{CartID: "c1", ID: "i1", Name: "Mug", Price: 10, Quantity: intPtr(2)})
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, AddItemInput{CartID: "c1", ID: "i2", Name: "Plate", Price: 4.5, Quantity: intPtr(3)})
	require.NoError(t, err)

	total, err := cartService.TotalItems(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	subTotal, err := cartService.SubTotal(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 33.5, subTotal)
}

func TestSumQuantities_ZeroQuantityCountsAsOne(t *testing.T) {
	items := []model.CartItem{
		{ID: "a", Quantity: 3},
		{ID: "b", Quantity: 0},
		{ID: "c", Quantity: 2},
	}
	assert.Equal(t, 6, SumQuantities(items))
	assert.Equal(t, 0, SumQuantities(nil))
}

func TestSumAmounts(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, SumAmounts(nil))
	})
	t.Run("exact cents", func(t *testing.T) {
		items := []model.CartItem{
			{Price: 0.1, Quantity: 1},
			{Price: 0.2, Quantity: 1},
		}
		assert.Equal(t, 0.3, SumAmounts(items))
	})
	t.Run("single line equals its line total", func(t *testing.T) {
		item := model.CartItem{Price: 0.1, Quantity: 3}
		assert.Equal(t, item.LineTotal(), SumAmounts([]model.CartItem{item}))
		assert.Equal(t, 0.3, SumAmounts([]model.CartItem{item}))
	})
	t.Run("zero quantity contributes nothing", func(t *testing.T) {
		items := []model.CartItem{
			{Price: 10, Quantity: 0},
			{Price: 5, Quantity: 2},
		}
		assert.Equal(t, 10.0, SumAmounts(items))
	})
	t.Run("NaN collapses to zero", func(t *testing.T) {
		items := []model.CartItem{
			{Price: 10, Quantity: 1},
			{Price: math.NaN(), Quantity: 1},
		}
		assert.Equal(t, 0.0, SumAmounts(items))
	})
	t.Run("infinity is kept", func(t *testing.T) {
		items := []model.CartItem{{Price: math.Inf(1), Quantity: 1}}
		assert.True(t, math.IsInf(SumAmounts(items), 1))
	})
}

type failingCartRepo struct {
	findErr   error
	createErr error
	created   int
}

func (r *failingCartRepo) FindByID(ctx context.Context, id string) (*model.Cart, error) {
	return nil, r.findErr
}

func (r *failingCartRepo) Create(ctx context.Context, cart *model.Cart) error {
	r.created++
	return r.createErr
}

func TestCartService_FindOrCreateCart_PropagatesStorageErrors(t *testing.T) {
	connErr := errors.New("connection refused")

	t.Run("lookup failure does not create", func(t *testing.T) {
		repo := &failingCartRepo{findErr: connErr}
		svc := NewCartService(repo, nil)

		_, err := svc.FindOrCreateCart(context.Background(), "c1")
		assert.ErrorIs(t, err, connErr)
		assert.Equal(t, 0, repo.created)
	})

	t.Run("create failure surfaces", func(t *testing.T) {
		repo := &failingCartRepo{findErr: gorm.ErrRecordNotFound, createErr: connErr}
		svc := NewCartService(repo, nil)

		_, err := svc.FindOrCreateCart(context.Background(), "c1")
		assert.ErrorIs(t, err, connErr)
		assert.Equal(t, 1, repo.created)
	})
}

func TestAddItemInput_EffectiveQuantity(t *testing.T) {
	assert.Equal(t, 1, AddItemInput{}.EffectiveQuantity())
	assert.Equal(t, 1, AddItemInput{Quantity: intPtr(0)}.EffectiveQuantity())
	assert.Equal(t, 3, AddItemInput{Quantity: intPtr(3)}.EffectiveQuantity())
	assert.Equal(t, -2, AddItemInput{Quantity: intPtr(-2)}.EffectiveQuantity())
}
