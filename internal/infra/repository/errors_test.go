package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
)

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))
	assert.ErrorIs(t, mapError(gorm.ErrRecordNotFound), httperr.ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23503"}), httperr.ErrReferentialConflict)
	assert.ErrorIs(t, mapError(gorm.ErrForeignKeyViolated), httperr.ErrReferentialConflict)

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
	assert.Equal(t, "23505", mapError(&pgconn.PgError{Code: "23505"}).(*pgconn.PgError).Code)
}

func TestDelete_PostgresForeignKeyViolation(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "professionals"`)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	repo := NewProfessionalGormRepository(db)
	ok, err := repo.Delete(context.Background(), owner, 7)

	assert.False(t, ok)
	assert.ErrorIs(t, err, httperr.ErrReferentialConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
