package inventory

import (
	"context"

	domain "github.com/BruksfildServices01/belezasmart/internal/domain/inventory"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type ProductLister interface {
	List(ctx context.Context, userID uint) ([]models.Product, error)
}

type InventoryLister interface {
	List(ctx context.Context, userID uint) ([]models.Inventory, error)
}

type ListLowStock struct {
	products    ProductLister
	inventories InventoryLister
}

func NewListLowStock(products ProductLister, inventories InventoryLister) *ListLowStock {
	return &ListLowStock{products: products, inventories: inventories}
}

// Execute recalcula o alerta a cada chamada; nada é persistido.
func (uc *ListLowStock) Execute(ctx context.Context, userID uint) ([]domain.LowStockItem, error) {
	products, err := uc.products.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	inventories, err := uc.inventories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return domain.LowStock(products, inventories), nil
}
