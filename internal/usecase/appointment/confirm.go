package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/domain/confirmation"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type ConfirmResult struct {
	Outcome     confirmation.Outcome
	Appointment *models.Appointment
}

// ConfirmByToken valida o token público e confirma o agendamento.
// Nunca devolve erro: toda falha vira um Outcome exibível.
type ConfirmByToken struct {
	repo  domain.ConfirmationRepository
	audit *audit.Dispatcher
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewConfirmByToken(
	repo domain.ConfirmationRepository,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
) *ConfirmByToken {
	return &ConfirmByToken{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

func (uc *ConfirmByToken) Execute(ctx context.Context, token string) ConfirmResult {
	token = strings.TrimSpace(token)
	if token == "" {
		return ConfirmResult{Outcome: confirmation.OutcomeMissing}
	}

	tok, err := uc.repo.GetConfirmationToken(ctx, token)
	if err != nil {
		if err == httperr.ErrNotFound {
			return ConfirmResult{Outcome: confirmation.OutcomeNotFound}
		}
		uc.log.WithError(err).Error("failed to load confirmation token")
		return ConfirmResult{Outcome: confirmation.OutcomeError}
	}

	now := uc.now()
	if outcome := confirmation.Check(tok, now); outcome != "" {
		return ConfirmResult{Outcome: outcome, Appointment: uc.appointment(ctx, tok)}
	}

	consumed, err := uc.repo.ConfirmWithToken(ctx, tok, now)
	if err == httperr.ErrNotFound {
		return ConfirmResult{Outcome: confirmation.OutcomeNotFound}
	}
	if err != nil {
		uc.log.WithError(err).
			WithField("appointment_id", tok.AppointmentID).
			Error("failed to confirm appointment")
		return ConfirmResult{Outcome: confirmation.OutcomeError}
	}

	ap := uc.appointment(ctx, tok)
	if !consumed {
		// outra requisição consumiu o token entre a leitura e a escrita
		return ConfirmResult{Outcome: confirmation.OutcomeAlreadyConfirmed, Appointment: ap}
	}

	apID := tok.AppointmentID
	uc.audit.Dispatch(audit.Event{
		UserID:   tok.UserID,
		Action:   "appointment_confirmed_by_link",
		Entity:   "appointment",
		EntityID: &apID,
	})

	return ConfirmResult{Outcome: confirmation.OutcomeConfirmed, Appointment: ap}
}

// appointment carrega o agendamento apenas para exibição na página.
func (uc *ConfirmByToken) appointment(ctx context.Context, tok *models.ConfirmationToken) *models.Appointment {
	ap, err := uc.repo.GetAppointment(ctx, tok.UserID, tok.AppointmentID)
	if err != nil {
		return nil
	}
	return ap
}
