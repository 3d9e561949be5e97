package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/middleware"
)

// OwnedStore é o contrato de acesso por dono usado pelos CRUDs.
type OwnedStore[T any] interface {
	List(ctx context.Context, userID uint) ([]T, error)
	Create(ctx context.Context, userID uint, row *T) (bool, error)
	Update(ctx context.Context, userID uint, id uint, fields map[string]any) (*T, bool, error)
	Delete(ctx context.Context, userID uint, id uint) (bool, error)
}

func listOwned[T any](c *gin.Context, log logrus.FieldLogger, store OwnedStore[T], code string) {
	rows, err := store.List(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, log, err, code)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func createOwned[T any](c *gin.Context, log logrus.FieldLogger, store OwnedStore[T], row *T, code string) {
	ok, err := store.Create(c.Request.Context(), middleware.OwnerID(c), row)
	if err != nil {
		respondError(c, log, err, code)
		return
	}
	if !ok {
		notApplied(c)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func updateOwned[T any](
	c *gin.Context,
	log logrus.FieldLogger,
	store OwnedStore[T],
	fields map[string]any,
	code string,
) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	owner := middleware.OwnerID(c)
	row, ok, err := store.Update(c.Request.Context(), owner, id, fields)
	if err != nil {
		respondError(c, log, err, code)
		return
	}
	if !ok {
		if owner == 0 {
			notApplied(c)
			return
		}
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
		return
	}
	c.JSON(http.StatusOK, row)
}

// deleteOwned exclui e responde 409 com conflictMessage quando há
// registros dependentes.
func deleteOwned[T any](
	c *gin.Context,
	log logrus.FieldLogger,
	store OwnedStore[T],
	conflictMessage string,
	code string,
) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	owner := middleware.OwnerID(c)
	deleted, err := store.Delete(c.Request.Context(), owner, id)
	if err != nil {
		if conflictMessage != "" && isReferentialConflict(err) {
			httperr.Conflict(c, "referential_conflict", conflictMessage)
			return
		}
		respondError(c, log, err, code)
		return
	}
	if !deleted {
		if owner == 0 {
			notApplied(c)
			return
		}
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
