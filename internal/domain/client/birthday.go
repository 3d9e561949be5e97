package client

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

// monthDay lê mês e dia direto da string YYYY-MM-DD, sem passar por
// time.Parse/fuso horário, evitando o deslocamento de um dia.
func monthDay(dob string) (time.Month, int, bool) {
	dob = strings.TrimSpace(dob)
	if len(dob) < 10 || dob[4] != '-' || dob[7] != '-' {
		return 0, 0, false
	}

	m, err := strconv.Atoi(dob[5:7])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	d, err := strconv.Atoi(dob[8:10])
	if err != nil || d < 1 || d > 31 {
		return 0, 0, false
	}

	return time.Month(m), d, true
}

// BirthdaysOn devolve os clientes que fazem aniversário no dia de today.
// today deve estar no fuso do dono da conta.
func BirthdaysOn(clients []models.Client, today time.Time) []models.Client {
	out := make([]models.Client, 0)
	for _, c := range clients {
		m, d, ok := monthDay(c.DateOfBirth)
		if ok && m == today.Month() && d == today.Day() {
			out = append(out, c)
		}
	}
	return out
}

// BirthdaysInMonth devolve os aniversariantes do mês, em ordem de dia.
func BirthdaysInMonth(clients []models.Client, month time.Month) []models.Client {
	type entry struct {
		day    int
		client models.Client
	}

	matches := make([]entry, 0)
	for _, c := range clients {
		m, d, ok := monthDay(c.DateOfBirth)
		if ok && m == month {
			matches = append(matches, entry{day: d, client: c})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].day < matches[j].day
	})

	out := make([]models.Client, 0, len(matches))
	for _, e := range matches {
		out = append(out, e.client)
	}
	return out
}

// BirthdayDay devolve o dia do mês do aniversário, ou 0 se a data for inválida.
func BirthdayDay(c models.Client) int {
	_, d, ok := monthDay(c.DateOfBirth)
	if !ok {
		return 0
	}
	return d
}
