package subscription

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/infra/repository"
	"github.com/BruksfildServices01/belezasmart/internal/payment"
	"github.com/BruksfildServices01/belezasmart/internal/testutil"
)

type fakeGateway struct {
	sub       *payment.Subscription
	err       error
	finds     int
	checkouts []payment.CheckoutRequest
}

func (g *fakeGateway) CreateCheckout(_ context.Context, req payment.CheckoutRequest) (string, error) {
	g.checkouts = append(g.checkouts, req)
	return "https://pagamento.exemplo/checkout/1", g.err
}

func (g *fakeGateway) FindSubscription(context.Context, string) (*payment.Subscription, error) {
	g.finds++
	return g.sub, g.err
}

func (g *fakeGateway) PortalURL() string { return "https://pagamento.exemplo/portal" }

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string][]byte{}} }

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func TestCheckout(t *testing.T) {
	gw := &fakeGateway{}
	c := newMemoryCache()
	c.data[cacheKey("Ana@Salao.com")] = []byte(`{"subscribed":false}`)

	uc := NewCheckout(gw, c, nil)

	url, err := uc.Execute(context.Background(), 1, "Ana@Salao.com", "basico")
	require.NoError(t, err)
	assert.Equal(t, "https://pagamento.exemplo/checkout/1", url)
	require.Len(t, gw.checkouts, 1)
	assert.Equal(t, payment.PlanBasico, gw.checkouts[0].Plan)
	assert.Empty(t, c.data, "checkout invalida o cache da assinatura")

	_, err = uc.Execute(context.Background(), 1, "ana@salao.com", "ouro")
	assert.True(t, httperr.IsBusiness(err, "invalid_plan"))

	_, err = NewCheckout(payment.Disabled{}, c, nil).Execute(context.Background(), 1, "ana@salao.com", "PREMIUM")
	assert.ErrorIs(t, err, payment.ErrDisabled)
}

func TestCheckSubscription_CachesAndMirrors(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewAccountGormRepository(db)
	logger, _ := test.NewNullLogger()
	ctx := context.Background()

	next := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	gw := &fakeGateway{sub: &payment.Subscription{
		ID: "pre-1", Status: "authorized", Plan: payment.PlanPremium, Active: true, NextPayment: &next,
	}}
	c := newMemoryCache()

	uc := NewCheckSubscription(gw, repo, c, time.Minute, logger)

	st, err := uc.Execute(ctx, 1, "ana@salao.com")
	require.NoError(t, err)
	assert.True(t, st.Subscribed)
	require.NotNil(t, st.SubscriptionTier)
	assert.Equal(t, "PREMIUM", *st.SubscriptionTier)

	st, err = uc.Execute(ctx, 1, "ANA@salao.com")
	require.NoError(t, err)
	assert.True(t, st.Subscribed)
	assert.Equal(t, 1, gw.finds, "segunda consulta vem do cache")

	row, err := repo.GetSubscriberByEmail(ctx, "ana@salao.com")
	require.NoError(t, err)
	assert.True(t, row.Subscribed)
	assert.Equal(t, "pre-1", row.PreapprovalID)

	portal, err := NewPortal(gw, repo).Execute(ctx, "ana@salao.com")
	require.NoError(t, err)
	assert.Equal(t, "https://pagamento.exemplo/portal", portal)
}

func TestCheckSubscription_NoSubscription(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewAccountGormRepository(db)
	logger, _ := test.NewNullLogger()
	ctx := context.Background()

	gw := &fakeGateway{}
	c := newMemoryCache()

	st, err := NewCheckSubscription(gw, repo, c, 0, logger).Execute(ctx, 1, "bia@salao.com")
	require.NoError(t, err)
	assert.False(t, st.Subscribed)
	assert.Nil(t, st.SubscriptionTier)
	assert.Empty(t, c.data, "ttl zero não grava cache")

	_, err = NewPortal(gw, repo).Execute(ctx, "carla@salao.com")
	assert.True(t, httperr.IsBusiness(err, "no_subscription"))

	gw.err = errors.New("provider down")
	_, err = NewCheckSubscription(gw, repo, c, time.Minute, logger).Execute(ctx, 1, "bia@salao.com")
	assert.Error(t, err)
}
