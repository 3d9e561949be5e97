package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stock "github.com/BruksfildServices01/belezasmart/internal/domain/inventory"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/testutil"
)

const owner uint = 1

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func TestOwnedRepository_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	repo := NewProfessionalGormRepository(testutil.NewDB(t))

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	ok, err := repo.Create(ctx, 0, &models.Professional{Name: "Joana"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.Update(ctx, 0, 1, map[string]any{"name": "x"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, 0, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOwnedRepository_ScopedByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewProfessionalGormRepository(testutil.NewDB(t))

	p := &models.Professional{Name: "Joana"}
	ok, err := repo.Create(ctx, owner, p)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, owner, p.UserID)

	other, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)

	_, ok, err = repo.Update(ctx, 2, p.ID, map[string]any{"name": "Outra"})
	require.NoError(t, err)
	assert.False(t, ok)

	updated, ok, err := repo.Update(ctx, owner, p.ID, map[string]any{"specialty": "Cor"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Joana", updated.Name)
	assert.Equal(t, "Cor", updated.Specialty)
}

func TestClientDelete_RejectedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	clients := NewClientGormRepository(db)

	withTx := &models.Client{Name: "Ana"}
	withAppointment := &models.Client{Name: "Bia"}
	legacy := &models.Client{Name: "Carla"}
	free := &models.Client{Name: "Duda"}
	for _, c := range []*models.Client{withTx, withAppointment, legacy, free} {
		ok, err := clients.Create(ctx, owner, c)
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.NoError(t, db.Create(&models.Transaction{
		UserID: owner, Tipo: models.TransactionIncome, Descricao: "Corte",
		Valor: decimal.NewFromInt(50), Data: "2024-03-01", ClientID: &withTx.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Appointment{
		UserID: owner, ClientID: &withAppointment.ID, ClientName: "Bia",
		Date: "2024-03-01", Time: "09:00", Status: "scheduled",
	}).Error)
	require.NoError(t, db.Create(&models.Appointment{
		UserID: owner, ClientName: "carla",
		Date: "2024-03-01", Time: "10:00", Status: "scheduled",
	}).Error)

	for _, c := range []*models.Client{withTx, withAppointment, legacy} {
		ok, err := clients.Delete(ctx, owner, c.ID)
		assert.ErrorIs(t, err, httperr.ErrReferentialConflict, c.Name)
		assert.False(t, ok)

		var count int64
		db.Model(&models.Client{}).Where("id = ?", c.ID).Count(&count)
		assert.EqualValues(t, 1, count, "%s must be kept", c.Name)
	}

	ok, err := clients.Delete(ctx, owner, free.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = clients.Delete(ctx, owner, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServiceDelete_RejectedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	services := NewServiceGormRepository(db)

	svc := &models.Service{Name: "Corte", Price: decimal.NewFromInt(50)}
	ok, err := services.Create(ctx, owner, svc)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, db.Create(&models.Appointment{
		UserID: owner, ServiceID: &svc.ID, Service: "Corte",
		Date: "2024-03-01", Time: "09:00", Status: "scheduled",
	}).Error)

	ok, err = services.Delete(ctx, owner, svc.ID)
	assert.ErrorIs(t, err, httperr.ErrReferentialConflict)
	assert.False(t, ok)

	var count int64
	db.Model(&models.Service{}).Where("id = ?", svc.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestServiceDelete_RejectedByLegacyServiceName(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	services := NewServiceGormRepository(db)

	svc := &models.Service{Name: "Escova", Price: decimal.NewFromInt(40)}
	ok, err := services.Create(ctx, owner, svc)
	require.NoError(t, err)
	require.True(t, ok)

	free := &models.Service{Name: "Manicure", Price: decimal.NewFromInt(25)}
	ok, err = services.Create(ctx, owner, free)
	require.NoError(t, err)
	require.True(t, ok)

	// agendamento antigo sem service_id
	require.NoError(t, db.Create(&models.Appointment{
		UserID: owner, Service: "escova",
		Date: "2024-03-01", Time: "10:00", Status: "scheduled",
	}).Error)

	ok, err = services.Delete(ctx, owner, svc.ID)
	assert.ErrorIs(t, err, httperr.ErrReferentialConflict)
	assert.False(t, ok)

	ok, err = services.Delete(ctx, owner, free.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = services.Delete(ctx, owner, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

// O UPDATE com CASE segue a mesma regra de piso de stock.ApplySale.
func TestInventoryDecrementOnSale_AgreesWithApplySale(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	products := NewProductGormRepository(db)
	inventory := NewInventoryGormRepository(db)

	p := &models.Product{Name: "Esmalte", Price: decimal.NewFromInt(12)}
	ok, err := products.CreateWithInventory(ctx, owner, p, &models.Inventory{})
	require.NoError(t, err)
	require.True(t, ok)

	for _, q := range []int{0, 1, 4, 10} {
		for _, n := range []int{-1, 0, 1, 4, 11} {
			require.NoError(t, db.Model(&models.Inventory{}).
				Where("product_id = ?", p.ID).
				Update("quantity", q).Error)

			got, err := inventory.DecrementOnSale(ctx, owner, p.ID, n)
			require.NoError(t, err)
			assert.Equal(t, stock.ApplySale(q, n), got, "q=%d n=%d", q, n)
		}
	}
}

func TestInventoryDecrementOnSale_FloorsAtZero(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	products := NewProductGormRepository(db)
	inventory := NewInventoryGormRepository(db)

	p := &models.Product{Name: "Shampoo", Price: decimal.NewFromInt(30), MinStockLevel: intPtr(2)}
	ok, err := products.CreateWithInventory(ctx, owner, p, &models.Inventory{Quantity: 5})
	require.NoError(t, err)
	require.True(t, ok)

	qty, err := inventory.DecrementOnSale(ctx, owner, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	qty, err = inventory.DecrementOnSale(ctx, owner, p.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	_, err = inventory.DecrementOnSale(ctx, owner, 999, 1)
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	// outro dono não enxerga o estoque
	_, err = inventory.DecrementOnSale(ctx, 2, p.ID, 1)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestProductDelete_RemovesInventory(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	products := NewProductGormRepository(db)

	p := &models.Product{Name: "Esmalte", Price: decimal.NewFromInt(10)}
	ok, err := products.CreateWithInventory(ctx, owner, p, &models.Inventory{Quantity: 3})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = products.Delete(ctx, owner, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	var count int64
	db.Model(&models.Inventory{}).Where("product_id = ?", p.ID).Count(&count)
	assert.Zero(t, count)
}

func TestConfirmWithToken_SingleUse(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(db)

	ap := &models.Appointment{UserID: owner, ClientName: "Ana", Date: "2024-03-01", Time: "09:00", Status: "scheduled"}
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	now := time.Now()
	tok := &models.ConfirmationToken{Token: "abc", AppointmentID: ap.ID, UserID: owner, ExpiresAt: now.Add(48 * time.Hour)}
	require.NoError(t, repo.CreateConfirmationToken(ctx, tok))

	consumed, err := repo.ConfirmWithToken(ctx, tok, now)
	require.NoError(t, err)
	assert.True(t, consumed)

	consumed, err = repo.ConfirmWithToken(ctx, tok, now)
	require.NoError(t, err)
	assert.False(t, consumed)

	got, err := repo.GetAppointment(ctx, owner, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)

	stored, err := repo.GetConfirmationToken(ctx, "abc")
	require.NoError(t, err)
	assert.NotNil(t, stored.UsedAt)
}

func TestAccountUpsertSubscriber_ByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountGormRepository(testutil.NewDB(t))

	tier := "BASICO"
	require.NoError(t, repo.UpsertSubscriber(ctx, &models.Subscriber{UserID: owner, Email: "a@b.com"}))
	require.NoError(t, repo.UpsertSubscriber(ctx, &models.Subscriber{
		UserID: owner, Email: "a@b.com", Subscribed: true, SubscriptionTier: &tier, PreapprovalID: "pre-1",
	}))

	s, err := repo.GetSubscriberByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, s.Subscribed)
	require.NotNil(t, s.SubscriptionTier)
	assert.Equal(t, "BASICO", *s.SubscriptionTier)
	assert.Equal(t, "pre-1", s.PreapprovalID)

	_, err = repo.GetSubscriberByEmail(ctx, "x@y.com")
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestClientSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewClientGormRepository(testutil.NewDB(t))

	for _, c := range []*models.Client{
		{Name: "Ana Souza", Phone: "11999990000"},
		{Name: "Bia", Email: "BIA@mail.com"},
	} {
		_, err := repo.Create(ctx, owner, c)
		require.NoError(t, err)
	}

	got, err := repo.Search(ctx, owner, "souza")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Souza", got[0].Name)

	got, err = repo.Search(ctx, owner, "bia@")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.Search(ctx, owner, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListForPeriod(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewTransactionGormRepository(db)

	for _, d := range []string{"2024-02-29", "2024-03-01", "2024-03-31", "2024-04-01"} {
		_, err := repo.Create(ctx, owner, &models.Transaction{
			Tipo: models.TransactionIncome, Descricao: d, Valor: decimal.NewFromInt(1), Data: d,
			ProfessionalID: uintPtr(1),
		})
		require.NoError(t, err)
	}

	got, err := repo.ListForPeriod(ctx, owner, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-31", got[0].Data)
}
