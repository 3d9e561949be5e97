package appointment

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   logrus.FieldLogger
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	rawStatus string,
) (*models.Appointment, error) {

	to, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, lookupError(err, "appointment_not_found")
	}

	from := ap.Status
	if err := domain.SetStatus(ap, to); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if to == domain.StatusCompleted {
		if err := uc.recordIncome(ctx, ap); err != nil {
			// o status já foi salvo; a receita pode ser lançada manualmente
			uc.log.WithError(err).
				WithField("appointment_id", ap.ID).
				Warn("failed to record income for completed appointment")
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": from, "to": string(to)},
	})

	return ap, nil
}

// recordIncome lança uma receita com o valor do snapshot, uma única vez
// por agendamento.
func (uc *SetAppointmentStatus) recordIncome(ctx context.Context, ap *models.Appointment) error {
	if !ap.ServiceValueAtAppointment.Valid {
		return nil
	}

	exists, err := uc.repo.HasTransactionForAppointment(ctx, ap.UserID, ap.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	apID := ap.ID
	tx := &models.Transaction{
		UserID:         ap.UserID,
		Tipo:           models.TransactionIncome,
		Nome:           ap.ClientName,
		Descricao:      fmt.Sprintf("Serviço: %s", ap.Service),
		Valor:          ap.ServiceValueAtAppointment.Decimal,
		Data:           ap.Date,
		ProfessionalID: ap.ProfessionalID,
		ClientID:       ap.ClientID,
		AgendamentoID:  &apID,
	}
	return uc.repo.CreateTransaction(ctx, tx)
}
