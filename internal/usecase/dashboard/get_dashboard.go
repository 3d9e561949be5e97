package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/belezasmart/internal/domain/finance"
	"github.com/BruksfildServices01/belezasmart/internal/dto"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/timezone"
	appointmentUC "github.com/BruksfildServices01/belezasmart/internal/usecase/appointment"
	clientUC "github.com/BruksfildServices01/belezasmart/internal/usecase/client"
	inventoryUC "github.com/BruksfildServices01/belezasmart/internal/usecase/inventory"
)

type TransactionPeriodLister interface {
	ListForPeriod(ctx context.Context, userID uint, from, to string) ([]models.Transaction, error)
}

type Dashboard struct {
	Date              string                   `json:"date"`
	TodayAppointments []dto.AppointmentListDTO `json:"today_appointments"`
	Month             finance.Summary          `json:"month"`
	LowStockCount     int                      `json:"low_stock_count"`
	BirthdaysToday    []models.Client          `json:"birthdays_today"`
}

type GetDashboard struct {
	profiles     clientUC.ProfileGetter
	appointments *appointmentUC.ListAppointmentsByDate
	transactions TransactionPeriodLister
	lowStock     *inventoryUC.ListLowStock
	birthdays    *clientUC.ListBirthdays
	now          func() time.Time
}

func NewGetDashboard(
	profiles clientUC.ProfileGetter,
	appointments *appointmentUC.ListAppointmentsByDate,
	transactions TransactionPeriodLister,
	lowStock *inventoryUC.ListLowStock,
	birthdays *clientUC.ListBirthdays,
) *GetDashboard {
	return &GetDashboard{
		profiles:     profiles,
		appointments: appointments,
		transactions: transactions,
		lowStock:     lowStock,
		birthdays:    birthdays,
		now:          time.Now,
	}
}

func (uc *GetDashboard) Execute(ctx context.Context, userID uint) (*Dashboard, error) {
	tz := timezone.DefaultTimezone
	if p, err := uc.profiles.GetProfile(ctx, userID); err == nil && p.Timezone != "" {
		tz = p.Timezone
	}

	now := uc.now().In(timezone.Location(tz))
	today := now.Format("2006-01-02")

	// 1️⃣ agenda do dia
	appointments, err := uc.appointments.Execute(ctx, userID, today, nil)
	if err != nil {
		return nil, err
	}

	// 2️⃣ caixa do mês
	from, to := timezone.MonthBounds(now.Year(), now.Month())
	txs, err := uc.transactions.ListForPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	// 3️⃣ estoque baixo
	low, err := uc.lowStock.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 4️⃣ aniversariantes
	bdays, err := uc.birthdays.Execute(ctx, userID, int(now.Month()))
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Date:              today,
		TodayAppointments: appointments,
		Month:             finance.Summarize(txs),
		LowStockCount:     len(low),
		BirthdaysToday:    bdays.Today,
	}, nil
}
