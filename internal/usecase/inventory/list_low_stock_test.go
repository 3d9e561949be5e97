package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/belezasmart/internal/infra/repository"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/testutil"
)

func TestListLowStock(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	products := repository.NewProductGormRepository(db)
	inventories := repository.NewInventoryGormRepository(db)

	two := 2
	for _, c := range []struct {
		name string
		min  *int
		qty  int
	}{
		{"Condicionador", &two, 2},
		{"Esmalte", &two, 3},
		{"Luva", nil, 0},
	} {
		_, err := products.CreateWithInventory(ctx, 1, &models.Product{
			Name: c.name, Price: decimal.NewFromInt(10), MinStockLevel: c.min,
		}, &models.Inventory{Quantity: c.qty})
		require.NoError(t, err)
	}

	items, err := NewListLowStock(products, inventories).Execute(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Condicionador", items[0].Name)
	assert.Equal(t, "Luva", items[1].Name)

	anon, err := NewListLowStock(products, inventories).Execute(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, anon)
}
