package appointment

import (
	"context"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: audit}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (bool, error) {

	ok, err := uc.repo.DeleteAppointment(ctx, userID, appointmentID)
	if err != nil || !ok {
		return ok, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})
	return true, nil
}
