package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

// ======================================================
// PROFESSIONALS
// ======================================================

type ProfessionalHandler struct {
	store OwnedStore[models.Professional]
	log   logrus.FieldLogger
}

func NewProfessionalHandler(store OwnedStore[models.Professional], log logrus.FieldLogger) *ProfessionalHandler {
	return &ProfessionalHandler{store: store, log: log}
}

type CreateProfessionalRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Specialty string `json:"specialty" binding:"omitempty,max=100"`
}

type UpdateProfessionalRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Specialty *string `json:"specialty" binding:"omitempty,max=100"`
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	listOwned(c, h.log, h.store, "failed_to_list_professionals")
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req CreateProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}
	name, code := cleanName(req.Name)
	if code != "" {
		badRequest(c, code)
		return
	}
	row := &models.Professional{
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Specialty: strings.TrimSpace(req.Specialty),
	}
	createOwned(c, h.log, h.store, row, "failed_to_create_professional")
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	var req UpdateProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		name, code := cleanName(*req.Name)
		if code != "" {
			badRequest(c, code)
			return
		}
		fields["name"] = name
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		email, code := cleanEmail(*req.Email)
		if code != "" {
			badRequest(c, code)
			return
		}
		fields["email"] = email
	}
	if req.Specialty != nil {
		fields["specialty"] = strings.TrimSpace(*req.Specialty)
	}
	updateOwned(c, h.log, h.store, fields, "failed_to_update_professional")
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	deleteOwned(c, h.log, h.store, "", "failed_to_delete_professional")
}

// ======================================================
// SERVICES
// ======================================================

type ServiceHandler struct {
	store OwnedStore[models.Service]
	log   logrus.FieldLogger
}

func NewServiceHandler(store OwnedStore[models.Service], log logrus.FieldLogger) *ServiceHandler {
	return &ServiceHandler{store: store, log: log}
}

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description" binding:"omitempty,max=255"`
	Price       decimal.Decimal `json:"price"`
	Duration    *int            `json:"duration" binding:"omitempty,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration" binding:"omitempty,min=1"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	listOwned(c, h.log, h.store, "failed_to_list_services")
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	name, code := cleanName(req.Name)
	if code != "" {
		badRequest(c, code)
		return
	}

	row := &models.Service{
		Name:        name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.Duration,
	}
	createOwned(c, h.log, h.store, row, "failed_to_create_service")
}

// Update não altera o valor já registrado nos agendamentos existentes.
func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		name, code := cleanName(*req.Name)
		if code != "" {
			badRequest(c, code)
			return
		}
		fields["name"] = name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		fields["price"] = *req.Price
	}
	if req.Duration != nil {
		fields["duration_min"] = *req.Duration
	}
	updateOwned(c, h.log, h.store, fields, "failed_to_update_service")
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	deleteOwned(c, h.log, h.store,
		"Serviço possui agendamentos vinculados.",
		"failed_to_delete_service",
	)
}
