package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"scheduled":  StatusScheduled,
		" Confirmed": StatusConfirmed,
		"agendado":   StatusScheduled,
		"confirmado": StatusConfirmed,
		"concluido":  StatusCompleted,
		"Concluído":  StatusCompleted,
		"realizado":  StatusCompleted,
		"cancelado":  StatusCancelled,
	}
	for raw, want := range cases {
		got, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseStatus("archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestTransitions_AllPairsAllowed(t *testing.T) {
	for _, from := range Statuses() {
		for _, to := range Statuses() {
			assert.NoError(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.Error(t, CanTransition("archived", StatusConfirmed))
}

func TestSetStatus_LegacyCurrentValue(t *testing.T) {
	ap := &models.Appointment{Status: "agendado"}
	require.NoError(t, SetStatus(ap, StatusCompleted))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 24)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "19:30", slots[len(slots)-1])

	assert.NoError(t, ValidateTime("12:30"))
	assert.Error(t, ValidateTime("12:15"))
	assert.Error(t, ValidateTime("20:00"))
	assert.Error(t, ValidateTime("07:30"))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2024-02-29"))
	assert.Error(t, ValidateDate("2023-02-29"))
	assert.Error(t, ValidateDate("15/03/2024"))
	assert.Error(t, ValidateDate("2024-3-5"))
}

func TestApplyService_SnapshotsPrice(t *testing.T) {
	svc := &models.Service{ID: 7, Name: "Corte"}
	svc.Price = mustDecimal(t, "50.00")

	ap := &models.Appointment{}
	ApplyService(ap, svc)

	require.NotNil(t, ap.ServiceID)
	assert.Equal(t, uint(7), *ap.ServiceID)
	assert.Equal(t, "Corte", ap.Service)
	require.True(t, ap.ServiceValueAtAppointment.Valid)
	assert.True(t, ap.ServiceValueAtAppointment.Decimal.Equal(svc.Price))

	assert.False(t, ServiceChanged(ap, 7))
	assert.True(t, ServiceChanged(ap, 8))
}

func TestFreeSlots_IgnoresCancelled(t *testing.T) {
	booked := []models.Appointment{
		{Time: "09:00", Status: string(StatusScheduled)},
		{Time: "10:00", Status: string(StatusCancelled)},
	}

	slots := FreeSlots(booked)
	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["09:00"])
	assert.True(t, byTime["10:00"])
	assert.True(t, byTime["08:00"])
}
