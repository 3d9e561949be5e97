package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

// --------------------------------------------------
// Products (1:1 com product_inventory)
// --------------------------------------------------

type ProductGormRepository struct {
	*OwnedGormRepository[models.Product, *models.Product]
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{
		OwnedGormRepository: NewOwnedGormRepository[models.Product, *models.Product](db, "name ASC"),
		db:                  db,
	}
}

// CreateWithInventory cria o produto e o seu registro de estoque juntos.
func (r *ProductGormRepository) CreateWithInventory(
	ctx context.Context,
	userID uint,
	product *models.Product,
	inv *models.Inventory,
) (bool, error) {

	if userID == 0 {
		return false, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product.SetOwner(userID)
		if err := tx.Create(product).Error; err != nil {
			return err
		}

		inv.SetOwner(userID)
		inv.ProductID = product.ID
		return tx.Create(inv).Error
	})
	if err != nil {
		return false, mapError(err)
	}
	return true, nil
}

// Delete remove o produto e o estoque pareado.
func (r *ProductGormRepository) Delete(
	ctx context.Context,
	userID uint,
	id uint,
) (bool, error) {

	if userID == 0 {
		return false, nil
	}

	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ? AND user_id = ?", id, userID).
			Delete(&models.Inventory{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, mapError(err)
	}
	return deleted, nil
}

// --------------------------------------------------
// Inventory
// --------------------------------------------------

type InventoryGormRepository struct {
	*OwnedGormRepository[models.Inventory, *models.Inventory]
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{
		OwnedGormRepository: NewOwnedGormRepository[models.Inventory, *models.Inventory](db, "product_id ASC"),
		db:                  db,
	}
}

// DecrementOnSale baixa o estoque do produto em um único UPDATE
// condicional, com piso em zero, e devolve a quantidade resultante.
func (r *InventoryGormRepository) DecrementOnSale(
	ctx context.Context,
	userID uint,
	productID uint,
	sold int,
) (int, error) {

	if sold < 0 {
		sold = 0
	}

	res := r.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Update("quantity", gorm.Expr(
			"CASE WHEN quantity > ? THEN quantity - ? ELSE 0 END", sold, sold,
		))
	if res.Error != nil {
		return 0, mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, httperr.ErrNotFound
	}

	var inv models.Inventory
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		First(&inv).Error; err != nil {
		return 0, mapError(err)
	}
	return inv.Quantity, nil
}
