package appointment

import "github.com/BruksfildServices01/belezasmart/internal/models"

type AvailabilityInput struct {
	UserID         uint
	ProfessionalID *uint
	Date           string
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FreeSlots marca como ocupados os horários da grade já tomados
// por agendamentos não cancelados.
func FreeSlots(booked []models.Appointment) []TimeSlot {
	taken := make(map[string]bool, len(booked))
	for _, ap := range booked {
		st, err := ParseStatus(ap.Status)
		if err == nil && st == StatusCancelled {
			continue
		}
		taken[ap.Time] = true
	}

	grid := TimeSlots()
	out := make([]TimeSlot, 0, len(grid))
	for _, t := range grid {
		out = append(out, TimeSlot{Time: t, Available: !taken[t]})
	}
	return out
}
