package confirmation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

func TestCheck(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	used := now.Add(-time.Hour)

	assert.Equal(t, OutcomeNotFound, Check(nil, now))

	fresh := &models.ConfirmationToken{ExpiresAt: now.Add(time.Hour)}
	assert.Equal(t, Outcome(""), Check(fresh, now))

	expired := &models.ConfirmationToken{ExpiresAt: now}
	assert.Equal(t, OutcomeExpired, Check(expired, now))

	// usado e expirado: "já confirmado" tem prioridade
	usedExpired := &models.ConfirmationToken{ExpiresAt: now.Add(-time.Hour), UsedAt: &used}
	assert.Equal(t, OutcomeAlreadyConfirmed, Check(usedExpired, now))
}
