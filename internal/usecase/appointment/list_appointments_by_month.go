package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/dto"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo appointment.Repository
}

func NewListAppointmentsByMonth(
	repo appointment.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	userID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if userID == 0 {
		return []dto.AppointmentListDTO{}, nil
	}

	if err := timezone.ParseYearMonth(year, month); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	from, to := timezone.MonthBounds(year, time.Month(month))

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}
