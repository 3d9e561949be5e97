package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apDomain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/validators"
)

// respondError traduz erros de domínio/armazenamento para HTTP.
// Qualquer outro erro vira 500 com fallbackCode.
func respondError(c *gin.Context, log logrus.FieldLogger, err error, fallbackCode string) {
	if code := httperr.BusinessCode(err); code != "" {
		httperr.Write(c, businessStatus(code), code, httperr.Message(code))
		return
	}

	switch {
	case errors.Is(err, httperr.ErrReferentialConflict):
		httperr.Conflict(c, "referential_conflict", httperr.Message("referential_conflict"))
		return
	case errors.Is(err, httperr.ErrNotFound):
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
		return
	}

	log.WithError(err).WithFields(logrus.Fields{
		"path": c.FullPath(),
		"code": fallbackCode,
	}).Error("request failed")
	httperr.Internal(c, fallbackCode, httperr.Message(fallbackCode))
}

func businessStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"), code == "no_subscription":
		return http.StatusNotFound
	case code == "referential_conflict", code == "email_taken":
		return http.StatusConflict
	case code == "storage_unavailable":
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// optionalUintQuery lê um filtro numérico opcional da query string.
func optionalUintQuery(c *gin.Context, key string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Filtro inválido.")
		return nil, false
	}
	id := uint(v)
	return &id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_request",
			"message":    httperr.Message("invalid_request"),
			"details":    err.Error(),
		})
		return false
	}
	return true
}

// notApplied é a resposta de mutações sem dono identificado (ou sem
// linha correspondente): nada foi gravado, sem erro.
func notApplied(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": false})
}

func isReferentialConflict(err error) bool {
	return errors.Is(err, httperr.ErrReferentialConflict) ||
		httperr.IsBusiness(err, "referential_conflict")
}

func isISODate(s string) bool {
	return apDomain.ValidateDate(s) == nil
}

// cleanName apara o nome; só espaços conta como vazio.
func cleanName(raw string) (string, string) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", "invalid_name"
	}
	return name, ""
}

// cleanEmail apara o e-mail; vazio limpa o campo.
func cleanEmail(raw string) (string, string) {
	email := strings.TrimSpace(raw)
	if email != "" && !validators.IsEmailFormatValid(email) {
		return "", "invalid_email"
	}
	return email, ""
}

func badRequest(c *gin.Context, code string) {
	httperr.BadRequest(c, code, httperr.Message(code))
}
