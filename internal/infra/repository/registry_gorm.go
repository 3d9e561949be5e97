package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

// --------------------------------------------------
// Clients
// --------------------------------------------------

type ClientGormRepository struct {
	*OwnedGormRepository[models.Client, *models.Client]
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{
		OwnedGormRepository: NewOwnedGormRepository[models.Client, *models.Client](db, "name ASC"),
		db:                  db,
	}
}

// Search filtra por nome, telefone ou e-mail (sem diferenciar maiúsculas).
func (r *ClientGormRepository) Search(
	ctx context.Context,
	userID uint,
	query string,
) ([]models.Client, error) {

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.List(ctx, userID)
	}

	out := make([]models.Client, 0)
	if userID == 0 {
		return out, nil
	}

	like := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?", like, like, like).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// Delete recusa a exclusão quando há transações ou agendamentos do cliente.
func (r *ClientGormRepository) Delete(
	ctx context.Context,
	userID uint,
	id uint,
) (bool, error) {

	if userID == 0 {
		return false, nil
	}

	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.Where("id = ? AND user_id = ?", id, userID).
			First(&client).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.Transaction{}).
			Where("user_id = ? AND client_id = ?", userID, id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return httperr.ErrReferentialConflict
		}

		// agendamentos antigos só guardam o nome do cliente
		if err := tx.Model(&models.Appointment{}).
			Where("user_id = ?", userID).
			Where("client_id = ? OR (client_id IS NULL AND LOWER(client_name) = ?)",
				id, strings.ToLower(client.Name)).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return httperr.ErrReferentialConflict
		}

		res := tx.Delete(&client)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})

	if err != nil {
		err = mapError(err)
		if err == httperr.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return deleted, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

type ServiceGormRepository struct {
	*OwnedGormRepository[models.Service, *models.Service]
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{
		OwnedGormRepository: NewOwnedGormRepository[models.Service, *models.Service](db, "name ASC"),
		db:                  db,
	}
}

// Delete recusa a exclusão quando algum agendamento referencia o serviço.
// Transações de serviço chegam ao serviço sempre via agendamento.
func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	userID uint,
	id uint,
) (bool, error) {

	if userID == 0 {
		return false, nil
	}

	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.Where("id = ? AND user_id = ?", id, userID).
			First(&service).Error; err != nil {
			return err
		}

		// agendamentos antigos só guardam o nome do serviço
		var refs int64
		if err := tx.Model(&models.Appointment{}).
			Where("user_id = ?", userID).
			Where("service_id = ? OR (service_id IS NULL AND LOWER(service) = ?)",
				id, strings.ToLower(service.Name)).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return httperr.ErrReferentialConflict
		}

		res := tx.Delete(&service)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})

	if err != nil {
		err = mapError(err)
		if err == httperr.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return deleted, nil
}

// --------------------------------------------------
// Professionals
// --------------------------------------------------

type ProfessionalGormRepository struct {
	*OwnedGormRepository[models.Professional, *models.Professional]
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{
		OwnedGormRepository: NewOwnedGormRepository[models.Professional, *models.Professional](db, "name ASC"),
	}
}
