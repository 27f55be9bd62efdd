package db

import (
	"testing"

	"github.com/ikkim/cart-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_CreatesCartTables(t *testing.T) {
	conn, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(conn)

	assert.True(t, conn.Migrator().HasTable(&model.Cart{}))
	assert.True(t, conn.Migrator().HasTable(&model.CartItem{}))
}

func TestMigrate_IsRepeatable(t *testing.T) {
	conn, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(conn)

	assert.NoError(t, Migrate(conn))
}

func TestCartItem_KeyIsUniquePerCart(t *testing.T) {
	conn, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(conn)

	require.NoError(t, conn.Create(&model.Cart{ID: "c1"}).Error)
	require.NoError(t, conn.Create(&model.Cart{ID: "c2"}).Error)

	require.NoError(t, conn.Create(&model.CartItem{ID: "i1", CartID: "c1", Name: "Mug", Price: 10, Quantity: 1}).Error)
	assert.Error(t, conn.Create(&model.CartItem{ID: "i1", CartID: "c1", Name: "Mug", Price: 10, Quantity: 1}).Error)
	assert.NoError(t, conn.Create(&model.CartItem{ID: "i1", CartID: "c2", Name: "Mug", Price: 10, Quantity: 1}).Error)
}
