package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type Repository interface {
	// -------- Profile --------
	GetProfile(
		ctx context.Context,
		userID uint,
	) (*models.Profile, error)

	// -------- Lookups --------
	GetClient(
		ctx context.Context,
		userID uint,
		clientID uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		userID uint,
		serviceID uint,
	) (*models.Service, error)

	GetProfessional(
		ctx context.Context,
		userID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		userID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		userID uint,
		appointmentID uint,
	) (bool, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		userID uint,
		from string,
		to string,
	) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		userID uint,
		date string,
		professionalID *uint,
	) ([]models.Appointment, error)

	// -------- Derived income --------
	HasTransactionForAppointment(
		ctx context.Context,
		userID uint,
		appointmentID uint,
	) (bool, error)

	CreateTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error
}

type ConfirmationRepository interface {
	GetAppointment(
		ctx context.Context,
		userID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	CreateConfirmationToken(
		ctx context.Context,
		tok *models.ConfirmationToken,
	) error

	GetConfirmationToken(
		ctx context.Context,
		token string,
	) (*models.ConfirmationToken, error)

	// ConfirmWithToken marca o token como usado e o agendamento como
	// confirmado numa única transação. Retorna false se o token já
	// havia sido consumido por outra requisição.
	ConfirmWithToken(
		ctx context.Context,
		tok *models.ConfirmationToken,
		now time.Time,
	) (bool, error)
}
