package appointment

import (
	"context"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	ClientID       uint
	ServiceID      uint
	ProfessionalID *uint

	Date   string
	Time   string
	Status string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora na grade fixa
	// --------------------------------------------------
	if err := domain.ValidateDate(in.Date); err != nil {
		return nil, err
	}
	if err := domain.ValidateTime(in.Time); err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}

	// --------------------------------------------------
	// 2️⃣ Cliente
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.UserID, in.ClientID)
	if err != nil {
		return nil, lookupError(err, "client_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Serviço (snapshot do preço)
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.UserID, in.ServiceID)
	if err != nil {
		return nil, lookupError(err, "service_not_found")
	}

	// --------------------------------------------------
	// 4️⃣ Profissional (opcional)
	// --------------------------------------------------
	if in.ProfessionalID != nil {
		if _, err := uc.repo.GetProfessional(ctx, in.UserID, *in.ProfessionalID); err != nil {
			return nil, lookupError(err, "professional_not_found")
		}
	}

	// --------------------------------------------------
	// 5️⃣ Criação
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:         in.UserID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Time:           in.Time,
		Status:         string(status),
		Notes:          in.Notes,
	}
	domain.ApplyClient(ap, client)
	domain.ApplyService(ap, service)

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// lookupError converte "não encontrado" no código de negócio da entidade.
func lookupError(err error, code string) error {
	if err == httperr.ErrNotFound {
		return httperr.ErrBusiness(code)
	}
	return err
}
