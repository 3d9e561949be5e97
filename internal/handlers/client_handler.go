package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/middleware"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	clientUC "github.com/BruksfildServices01/belezasmart/internal/usecase/client"
)

type ClientStore interface {
	OwnedStore[models.Client]
	Search(ctx context.Context, userID uint, query string) ([]models.Client, error)
}

type ClientHandler struct {
	store     ClientStore
	birthdays *clientUC.ListBirthdays
	log       logrus.FieldLogger
}

func NewClientHandler(
	store ClientStore,
	birthdays *clientUC.ListBirthdays,
	log logrus.FieldLogger,
) *ClientHandler {
	return &ClientHandler{store: store, birthdays: birthdays, log: log}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=100"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes" binding:"omitempty,max=255"`
}

type UpdateClientRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty"`
	Notes       *string `json:"notes" binding:"omitempty,max=255"`
}

// fields valida depois de aparar os espaços; o segundo retorno é o
// código de erro, vazio quando tudo está certo.
func (r UpdateClientRequest) fields() (map[string]any, string) {
	f := map[string]any{}
	if r.Name != nil {
		name, code := cleanName(*r.Name)
		if code != "" {
			return nil, code
		}
		f["name"] = name
	}
	if r.Phone != nil {
		f["phone"] = strings.TrimSpace(*r.Phone)
	}
	if r.Email != nil {
		email, code := cleanEmail(*r.Email)
		if code != "" {
			return nil, code
		}
		f["email"] = email
	}
	if r.DateOfBirth != nil {
		dob := strings.TrimSpace(*r.DateOfBirth)
		if dob != "" && !isISODate(dob) {
			return nil, "invalid_date"
		}
		f["date_of_birth"] = dob
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f, ""
}

// --------- Handlers ---------

// List aceita ?query= para busca por nome, telefone ou e-mail.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.store.Search(c.Request.Context(), middleware.OwnerID(c), c.Query("query"))
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	name, code := cleanName(req.Name)
	if code != "" {
		badRequest(c, code)
		return
	}

	row := &models.Client{
		Name:        name,
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		DateOfBirth: req.DateOfBirth,
		Notes:       req.Notes,
	}
	createOwned(c, h.log, h.store, row, "failed_to_create_client")
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, code := req.fields()
	if code != "" {
		badRequest(c, code)
		return
	}
	updateOwned(c, h.log, h.store, fields, "failed_to_update_client")
}

func (h *ClientHandler) Delete(c *gin.Context) {
	deleteOwned(c, h.log, h.store,
		"Cliente possui agendamentos ou transações vinculadas.",
		"failed_to_delete_client",
	)
}

// ======================================================
// ANIVERSARIANTES
// ======================================================

func (h *ClientHandler) BirthdaysToday(c *gin.Context) {
	out, err := h.birthdays.Execute(c.Request.Context(), middleware.OwnerID(c), 0)
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_birthdays")
		return
	}
	c.JSON(http.StatusOK, out.Today)
}

// BirthdaysMonth: ?month=1..12 (padrão: mês corrente).
func (h *ClientHandler) BirthdaysMonth(c *gin.Context) {
	month := 0
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_month", httperr.Message("invalid_month"))
			return
		}
		month = m
	}

	out, err := h.birthdays.Execute(c.Request.Context(), middleware.OwnerID(c), month)
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_birthdays")
		return
	}
	c.JSON(http.StatusOK, out.Month)
}
