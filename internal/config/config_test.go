package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 48*time.Hour, cfg.ConfirmationTTL)
	assert.Equal(t, "55", cfg.PhoneCountryCode)
	assert.Equal(t, "America/Sao_Paulo", cfg.DefaultTimezone)
	assert.Equal(t, "49.9", cfg.MercadoPago.PlanPrices["BASICO"].String())
	assert.False(t, cfg.S3.Enabled())
	assert.True(t, cfg.CheckEmailDomain)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_BASE_URL", "https://app.exemplo.com/")
	t.Setenv("CONFIRMATION_TTL", "24h")
	t.Setenv("PLAN_PRICE_PREMIUM", "abc")
	t.Setenv("S3_BUCKET", "avatares")
	t.Setenv("S3_PUBLIC_URL", "https://cdn.exemplo.com/")
	t.Setenv("CHECK_EMAIL_DOMAIN", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://painel.exemplo.com, ,http://localhost:5173")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "https://app.exemplo.com", cfg.AppBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.ConfirmationTTL)
	assert.True(t, cfg.MercadoPago.PlanPrices["PREMIUM"].IsZero())
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, "https://cdn.exemplo.com", cfg.S3.PublicURL)
	assert.False(t, cfg.CheckEmailDomain)
	assert.Equal(t, []string{"https://painel.exemplo.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
}
