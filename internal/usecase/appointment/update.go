package appointment

import (
	"context"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type UpdateAppointmentInput struct {
	UserID        uint
	AppointmentID uint

	ClientID          *uint
	ServiceID         *uint
	ProfessionalID    *uint
	ClearProfessional bool

	Date   *string
	Time   *string
	Status *string
	Notes  *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica uma edição parcial. O snapshot do preço só é recalculado
// quando o serviço selecionado muda.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.UserID, in.AppointmentID)
	if err != nil {
		return nil, lookupError(err, "appointment_not_found")
	}

	if in.Date != nil {
		if err := domain.ValidateDate(*in.Date); err != nil {
			return nil, err
		}
		ap.Date = *in.Date
	}

	if in.Time != nil {
		if err := domain.ValidateTime(*in.Time); err != nil {
			return nil, err
		}
		ap.Time = *in.Time
	}

	if in.ClientID != nil {
		client, err := uc.repo.GetClient(ctx, in.UserID, *in.ClientID)
		if err != nil {
			return nil, lookupError(err, "client_not_found")
		}
		domain.ApplyClient(ap, client)
	}

	if in.ServiceID != nil && domain.ServiceChanged(ap, *in.ServiceID) {
		svc, err := uc.repo.GetService(ctx, in.UserID, *in.ServiceID)
		if err != nil {
			return nil, lookupError(err, "service_not_found")
		}
		domain.ApplyService(ap, svc)
	}

	switch {
	case in.ClearProfessional:
		ap.ProfessionalID = nil
	case in.ProfessionalID != nil:
		if _, err := uc.repo.GetProfessional(ctx, in.UserID, *in.ProfessionalID); err != nil {
			return nil, lookupError(err, "professional_not_found")
		}
		ap.ProfessionalID = in.ProfessionalID
	}

	if in.Status != nil {
		st, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := domain.SetStatus(ap, st); err != nil {
			return nil, err
		}
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
