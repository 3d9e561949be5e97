package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type TransactionGormRepository struct {
	*OwnedGormRepository[models.Transaction, *models.Transaction]
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{
		OwnedGormRepository: NewOwnedGormRepository[models.Transaction, *models.Transaction](db, "data DESC, id DESC"),
		db:                  db,
	}
}

// ListForPeriod lista transações com data entre from e to (inclusivo).
func (r *TransactionGormRepository) ListForPeriod(
	ctx context.Context,
	userID uint,
	from string,
	to string,
) ([]models.Transaction, error) {

	out := make([]models.Transaction, 0)
	if userID == 0 {
		return out, nil
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND data >= ? AND data <= ?", userID, from, to).
		Order("data DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}
