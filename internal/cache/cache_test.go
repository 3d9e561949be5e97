package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Subscribed bool   `json:"subscribed"`
	Tier       string `json:"tier"`
}

type mapCache map[string][]byte

func (m mapCache) Get(_ context.Context, k string) ([]byte, bool, error) {
	v, ok := m[k]
	return v, ok, nil
}

func (m mapCache) Set(_ context.Context, k string, v []byte, _ time.Duration) error {
	m[k] = v
	return nil
}

func (m mapCache) Delete(_ context.Context, k string) error {
	delete(m, k)
	return nil
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := mapCache{}

	require.NoError(t, SetJSON(ctx, c, "k", payload{Subscribed: true, Tier: "PREMIUM"}, time.Minute))
	assert.JSONEq(t, `{"subscribed":true,"tier":"PREMIUM"}`, string(c["k"]))

	var got payload
	found, err := GetJSON(ctx, c, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "PREMIUM", got.Tier)

	c["bad"] = []byte("{")
	found, err = GetJSON(ctx, c, "bad", &got)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Cache = Noop{}

	require.NoError(t, SetJSON(ctx, c, "k", payload{Subscribed: true}, time.Minute))

	var got payload
	found, err := GetJSON(ctx, c, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
