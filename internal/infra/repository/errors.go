package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
)

const pgForeignKeyViolation = "23503"

// mapError traduz erros do driver para os erros de domínio.
// Violação de chave estrangeira no Postgres vira conflito referencial,
// mesmo que a checagem prévia não a tenha detectado.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return httperr.ErrReferentialConflict
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return httperr.ErrReferentialConflict
	}

	return err
}
