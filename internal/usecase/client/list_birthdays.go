package client

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/belezasmart/internal/domain/client"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/timezone"
)

type ClientLister interface {
	List(ctx context.Context, userID uint) ([]models.Client, error)
}

type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uint) (*models.Profile, error)
}

type BirthdayEntry struct {
	models.Client
	Day int `json:"birthday_day"`
}

type Birthdays struct {
	Today []models.Client `json:"today"`
	Month []BirthdayEntry `json:"month"`
}

type ListBirthdays struct {
	clients  ClientLister
	profiles ProfileGetter
	now      func() time.Time
}

func NewListBirthdays(clients ClientLister, profiles ProfileGetter) *ListBirthdays {
	return &ListBirthdays{
		clients:  clients,
		profiles: profiles,
		now:      time.Now,
	}
}

// Execute devolve os aniversariantes do dia e do mês informado (1-12).
// month == 0 usa o mês corrente no fuso do salão.
func (uc *ListBirthdays) Execute(
	ctx context.Context,
	userID uint,
	month int,
) (*Birthdays, error) {

	out := &Birthdays{
		Today: make([]models.Client, 0),
		Month: make([]BirthdayEntry, 0),
	}
	if userID == 0 {
		return out, nil
	}

	if month < 0 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	clients, err := uc.clients.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := uc.today(ctx, userID)
	if month == 0 {
		month = int(today.Month())
	}

	out.Today = domain.BirthdaysOn(clients, today)
	for _, c := range domain.BirthdaysInMonth(clients, time.Month(month)) {
		out.Month = append(out.Month, BirthdayEntry{Client: c, Day: domain.BirthdayDay(c)})
	}
	return out, nil
}

func (uc *ListBirthdays) today(ctx context.Context, userID uint) time.Time {
	tz := timezone.DefaultTimezone
	if p, err := uc.profiles.GetProfile(ctx, userID); err == nil && p.Timezone != "" {
		tz = p.Timezone
	}
	return uc.now().In(timezone.Location(tz))
}
