package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	"github.com/BruksfildServices01/belezasmart/internal/infra/repository"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/testutil"
)

func TestBirthdayDigest_Run(t *testing.T) {
	db := testutil.NewDB(t)
	logger, _ := test.NewNullLogger()

	require.NoError(t, db.Create(&models.Profile{ID: 1, Email: "a@salao.com", Timezone: "America/Sao_Paulo"}).Error)
	require.NoError(t, db.Create(&models.Profile{ID: 2, Email: "b@salao.com", Timezone: "America/Sao_Paulo"}).Error)
	require.NoError(t, db.Create(&models.Client{UserID: 1, Name: "Ana", DateOfBirth: "1990-03-15"}).Error)
	require.NoError(t, db.Create(&models.Client{UserID: 2, Name: "Bia", DateOfBirth: "1990-03-16"}).Error)

	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	job := NewBirthdayDigest(
		repository.NewAccountGormRepository(db),
		repository.NewClientGormRepository(db),
		dispatcher,
		logger,
	)
	// 01:00 UTC do dia 16 ainda é dia 15 em São Paulo
	job.now = func() time.Time { return time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC) }

	assert.Equal(t, 1, job.Run(context.Background()))
	dispatcher.Close()

	var logs []models.AuditLog
	require.NoError(t, db.Where("action = ?", "birthday_digest").Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, uint(1), logs[0].UserID)
	assert.Contains(t, logs[0].Metadata, `"Ana"`)
	assert.Contains(t, logs[0].Metadata, `"2024-03-15"`)
}

func TestScheduler_EmptySpecDisablesJob(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewScheduler(logger)

	require.NoError(t, s.Add("disabled", "", func() {}))
	require.NoError(t, s.Add("digest", "0 8 * * *", func() {}))
	assert.Error(t, s.Add("broken", "not a cron", func() {}))

	s.Start()
	s.Stop()
}
