package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/belezasmart/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	setStatusUC    *ucAppointment.SetAppointmentStatus
	deleteUC       *ucAppointment.DeleteAppointment
	listByDateUC   *ucAppointment.ListAppointmentsByDate
	listByMonthUC  *ucAppointment.ListAppointmentsByMonth
	availabilityUC *ucAppointment.GetAvailability
	confirmLinkUC  *ucAppointment.IssueConfirmationLink
	log            logrus.FieldLogger
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	setStatusUC *ucAppointment.SetAppointmentStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	availabilityUC *ucAppointment.GetAvailability,
	confirmLinkUC *ucAppointment.IssueConfirmationLink,
	log logrus.FieldLogger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		setStatusUC:    setStatusUC,
		deleteUC:       deleteUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		availabilityUC: availabilityUC,
		confirmLinkUC:  confirmLinkUC,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       uint   `json:"client_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	ProfessionalID *uint  `json:"professional_id"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Status         string `json:"status"`
	Notes          string `json:"notes" binding:"omitempty,max=500"`
}

type UpdateAppointmentRequest struct {
	ClientID          *uint   `json:"client_id"`
	ServiceID         *uint   `json:"service_id"`
	ProfessionalID    *uint   `json:"professional_id"`
	ClearProfessional bool    `json:"clear_professional"`
	Date              *string `json:"date"`
	Time              *string `json:"time"`
	Status            *string `json:"status"`
	Notes             *string `json:"notes" binding:"omitempty,max=500"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	owner := middleware.OwnerID(c)

	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if owner == 0 {
		notApplied(c)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:         owner,
		ClientID:       req.ClientID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_appointment")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	owner := middleware.OwnerID(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if owner == 0 {
		notApplied(c)
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		UserID:            owner,
		AppointmentID:     id,
		ClientID:          req.ClientID,
		ServiceID:         req.ServiceID,
		ProfessionalID:    req.ProfessionalID,
		ClearProfessional: req.ClearProfessional,
		Date:              req.Date,
		Time:              req.Time,
		Status:            req.Status,
		Notes:             req.Notes,
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_update_appointment")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	owner := middleware.OwnerID(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if owner == 0 {
		notApplied(c)
		return
	}

	ap, err := h.setStatusUC.Execute(c.Request.Context(), owner, id, req.Status)
	if err != nil {
		respondError(c, h.log, err, "failed_to_update_status")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// Statuses lista os status aceitos com os rótulos de exibição.
func (h *AppointmentHandler) Statuses(c *gin.Context) {
	out := make([]gin.H, 0, len(domain.Statuses()))
	for _, s := range domain.Statuses() {
		out = append(out, gin.H{"value": s, "label": s.Label()})
	}
	c.JSON(http.StatusOK, out)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	owner := middleware.OwnerID(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.deleteUC.Execute(c.Request.Context(), owner, id)
	if err != nil {
		respondError(c, h.log, err, "failed_to_delete_appointment")
		return
	}
	if !deleted {
		if owner == 0 {
			notApplied(c)
			return
		}
		httperr.NotFound(c, "appointment_not_found", httperr.Message("appointment_not_found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// LIST
// ======================================================

// ListByDate: ?date=YYYY-MM-DD&professional_id=
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	professionalID, ok := optionalUintQuery(c, "professional_id")
	if !ok {
		return
	}

	aps, err := h.listByDateUC.Execute(c.Request.Context(), middleware.OwnerID(c), date, professionalID)
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_appointments")
		return
	}

	c.JSON(http.StatusOK, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	aps, err := h.listByMonthUC.Execute(c.Request.Context(), middleware.OwnerID(c), year, month)
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	professionalID, ok := optionalUintQuery(c, "professional_id")
	if !ok {
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		UserID:         middleware.OwnerID(c),
		ProfessionalID: professionalID,
		Date:           c.Query("date"),
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_load_availability")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// ======================================================
// CONFIRMATION LINK
// ======================================================

func (h *AppointmentHandler) ConfirmationLink(c *gin.Context) {
	owner := middleware.OwnerID(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	if owner == 0 {
		notApplied(c)
		return
	}

	link, err := h.confirmLinkUC.Execute(c.Request.Context(), owner, id, c.GetHeader("User-Agent"))
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_confirmation_link")
		return
	}

	c.JSON(http.StatusCreated, link)
}
