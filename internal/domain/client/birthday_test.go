package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestBirthdaysOn(t *testing.T) {
	clients := []models.Client{
		{ID: 1, Name: "Ana", DateOfBirth: "1990-03-15"},
		{ID: 2, Name: "Bia", DateOfBirth: ""},
		{ID: 3, Name: "Caio", DateOfBirth: "invalid"},
	}

	assert.Empty(t, BirthdaysOn(clients, day(2024, time.March, 14)))
	assert.Empty(t, BirthdaysOn(clients, day(2024, time.March, 16)))

	got := BirthdaysOn(clients, day(2024, time.March, 15))
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Ana", got[0].Name)
	}
}

// A data é lida da string: sem deslocamento de fuso.
func TestBirthdaysOn_NoTimezoneShift(t *testing.T) {
	clients := []models.Client{{Name: "Ana", DateOfBirth: "1990-01-01"}}

	sp, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	assert.Len(t, BirthdaysOn(clients, time.Date(2024, time.January, 1, 23, 0, 0, 0, sp)), 1)
	assert.Empty(t, BirthdaysOn(clients, time.Date(2023, time.December, 31, 23, 0, 0, 0, sp)))
}

func TestBirthdaysInMonth_SortedByDay(t *testing.T) {
	clients := []models.Client{
		{Name: "Ana", DateOfBirth: "1990-03-20"},
		{Name: "Bia", DateOfBirth: "1985-03-02"},
		{Name: "Caio", DateOfBirth: "2000-04-02"},
		{Name: "Duda", DateOfBirth: "1999-03-20"},
	}

	got := BirthdaysInMonth(clients, time.March)

	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Bia", "Ana", "Duda"}, names)
	assert.Equal(t, 2, BirthdayDay(got[0]))
}
