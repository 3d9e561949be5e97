package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve a grade do dia marcando os horários já ocupados
// (do profissional informado, ou de toda a agenda).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if err := domain.ValidateDate(in.Date); err != nil {
		return nil, err
	}

	if in.UserID == 0 {
		return domain.FreeSlots(nil), nil
	}

	appointments, err := uc.repo.ListAppointmentsForDate(
		ctx,
		in.UserID,
		in.Date,
		in.ProfessionalID,
	)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(appointments), nil
}
