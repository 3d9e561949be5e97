package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfile(
	ctx context.Context,
	userID uint,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, userID).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	userID uint,
	clientID uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&c).Error; err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	userID uint,
	serviceID uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", serviceID, userID).
		First(&s).Error; err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	userID uint,
	professionalID uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", professionalID, userID).
		First(&p).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return mapError(r.db.WithContext(ctx).Create(ap).Error)
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&ap).Error; err != nil {
		return nil, mapError(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return mapError(r.db.WithContext(ctx).Save(ap).Error)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return false, mapError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	userID uint,
	from string,
	to string,
) ([]models.Appointment, error) {

	apps := make([]models.Appointment, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, mapError(err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	userID uint,
	date string,
	professionalID *uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date)

	if professionalID != nil {
		q = q.Where("professional_id = ?", *professionalID)
	}

	apps := make([]models.Appointment, 0)
	if err := q.Order("time ASC").Find(&apps).Error; err != nil {
		return nil, mapError(err)
	}
	return apps, nil
}

// --------------------------------------------------
// Derived income
// --------------------------------------------------

func (r *AppointmentGormRepository) HasTransactionForAppointment(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ? AND agendamento_id = ?", userID, appointmentID).
		Count(&count).Error; err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) CreateTransaction(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return mapError(r.db.WithContext(ctx).Create(tx).Error)
}

// --------------------------------------------------
// Confirmation tokens
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateConfirmationToken(
	ctx context.Context,
	tok *models.ConfirmationToken,
) error {
	return mapError(r.db.WithContext(ctx).Create(tok).Error)
}

func (r *AppointmentGormRepository) GetConfirmationToken(
	ctx context.Context,
	token string,
) (*models.ConfirmationToken, error) {

	var tok models.ConfirmationToken
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tok).Error; err != nil {
		return nil, mapError(err)
	}
	return &tok, nil
}

func (r *AppointmentGormRepository) ConfirmWithToken(
	ctx context.Context,
	tok *models.ConfirmationToken,
	now time.Time,
) (bool, error) {

	consumed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// used_at IS NULL garante uso único mesmo com cliques simultâneos
		res := tx.Model(&models.ConfirmationToken{}).
			Where("token = ? AND used_at IS NULL", tok.Token).
			Update("used_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		upd := tx.Model(&models.Appointment{}).
			Where("id = ? AND user_id = ?", tok.AppointmentID, tok.UserID).
			Update("status", string(domain.StatusConfirmed))
		if upd.Error != nil {
			return upd.Error
		}
		// agendamento excluído: desfaz o used_at e o token continua intacto
		if upd.RowsAffected == 0 {
			return httperr.ErrNotFound
		}

		consumed = true
		return nil
	})
	if err != nil {
		return false, mapError(err)
	}
	return consumed, nil
}

// Compile-time check
var (
	_ domain.Repository             = (*AppointmentGormRepository)(nil)
	_ domain.ConfirmationRepository = (*AppointmentGormRepository)(nil)
)
