package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *AccountGormRepository) GetProfile(
	ctx context.Context,
	userID uint,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, userID).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *AccountGormRepository) UpdateProfile(
	ctx context.Context,
	userID uint,
	fields map[string]any,
) (*models.Profile, error) {

	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.Profile{}).
			Where("id = ?", userID).
			Updates(fields).Error; err != nil {
			return nil, mapError(err)
		}
	}
	return r.GetProfile(ctx, userID)
}

// ListProfiles é usado pelas rotinas agendadas que percorrem todas as contas.
func (r *AccountGormRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	out := make([]models.Profile, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// --------------------------------------------------
// Subscribers
// --------------------------------------------------

func (r *AccountGormRepository) GetSubscriberByEmail(
	ctx context.Context,
	email string,
) (*models.Subscriber, error) {

	var s models.Subscriber
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&s).Error; err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

// UpsertSubscriber espelha o estado da assinatura, chaveado pelo e-mail.
func (r *AccountGormRepository) UpsertSubscriber(
	ctx context.Context,
	s *models.Subscriber,
) error {
	return mapError(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id",
				"preapproval_id",
				"subscribed",
				"subscription_tier",
				"subscription_end",
				"updated_at",
			}),
		}).
		Create(s).Error)
}
