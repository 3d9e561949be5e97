package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/dto"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	userID uint,
	date string,
	professionalID *uint,
) ([]dto.AppointmentListDTO, error) {

	if userID == 0 {
		return []dto.AppointmentListDTO{}, nil
	}

	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, userID, date, professionalID)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}

func toListDTO(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		label := ap.Status
		if st, err := domain.ParseStatus(ap.Status); err == nil {
			label = st.Label()
		}

		item := dto.AppointmentListDTO{
			ID:             ap.ID,
			Date:           ap.Date,
			Time:           ap.Time,
			Status:         ap.Status,
			StatusLabel:    label,
			ClientName:     ap.ClientName,
			ClientPhone:    ap.ClientPhone,
			Service:        ap.Service,
			ProfessionalID: ap.ProfessionalID,
			Notes:          ap.Notes,
		}
		if ap.ServiceValueAtAppointment.Valid {
			v := ap.ServiceValueAtAppointment.Decimal
			item.ServiceValue = &v
		}
		out = append(out, item)
	}
	return out
}
