package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
)

// ownedModel restringe o repositório genérico a modelos com dono.
type ownedModel[T any] interface {
	*T
	SetOwner(userID uint)
}

// OwnedGormRepository implementa list/create/update/delete escopados
// pelo dono da conta. Sem dono (usuário não autenticado) as operações
// devolvem lista vazia / false, sem erro.
type OwnedGormRepository[T any, P ownedModel[T]] struct {
	db    *gorm.DB
	order string
}

func NewOwnedGormRepository[T any, P ownedModel[T]](
	db *gorm.DB,
	order string,
) *OwnedGormRepository[T, P] {
	if order == "" {
		order = "id ASC"
	}
	return &OwnedGormRepository[T, P]{db: db, order: order}
}

func (r *OwnedGormRepository[T, P]) List(
	ctx context.Context,
	userID uint,
) ([]T, error) {

	out := make([]T, 0)
	if userID == 0 {
		return out, nil
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(r.order).
		Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *OwnedGormRepository[T, P]) Get(
	ctx context.Context,
	userID uint,
	id uint,
) (*T, error) {

	if userID == 0 {
		return nil, httperr.ErrNotFound
	}

	var row T
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error; err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (r *OwnedGormRepository[T, P]) Create(
	ctx context.Context,
	userID uint,
	row P,
) (bool, error) {

	if userID == 0 {
		return false, nil
	}

	row.SetOwner(userID)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return false, mapError(err)
	}
	return true, nil
}

// Update aplica somente os campos informados (colunas → valores).
func (r *OwnedGormRepository[T, P]) Update(
	ctx context.Context,
	userID uint,
	id uint,
	fields map[string]any,
) (*T, bool, error) {

	if userID == 0 {
		return nil, false, nil
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(P(new(T))).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(fields)
		if res.Error != nil {
			return nil, false, mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, false, nil
		}
	}

	row, err := r.Get(ctx, userID, id)
	if err != nil {
		if err == httperr.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row, true, nil
}

func (r *OwnedGormRepository[T, P]) Delete(
	ctx context.Context,
	userID uint,
	id uint,
) (bool, error) {

	if userID == 0 {
		return false, nil
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(P(new(T)))
	if res.Error != nil {
		return false, mapError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
