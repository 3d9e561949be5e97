package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/belezasmart/internal/domain/confirmation"
	"github.com/BruksfildServices01/belezasmart/internal/domain/finance"
	"github.com/BruksfildServices01/belezasmart/internal/metrics"
	ucAppointment "github.com/BruksfildServices01/belezasmart/internal/usecase/appointment"
)

type confirmPage struct {
	status  int
	tone    string
	title   string
	message string
}

var confirmPages = map[confirmation.Outcome]confirmPage{
	confirmation.OutcomeMissing: {
		http.StatusBadRequest, "fail", "Link inválido",
		"O link de confirmação está incompleto. Peça um novo link ao salão.",
	},
	confirmation.OutcomeNotFound: {
		http.StatusNotFound, "fail", "Link não encontrado",
		"Não encontramos este link de confirmação. Peça um novo link ao salão.",
	},
	confirmation.OutcomeExpired: {
		http.StatusGone, "warn", "Link expirado",
		"Este link de confirmação expirou. Entre em contato com o salão para confirmar.",
	},
	confirmation.OutcomeAlreadyConfirmed: {
		http.StatusOK, "ok", "Agendamento já confirmado",
		"Este agendamento já foi confirmado. Até breve!",
	},
	confirmation.OutcomeConfirmed: {
		http.StatusOK, "ok", "Agendamento confirmado!",
		"Obrigado! Seu horário está confirmado.",
	},
	confirmation.OutcomeError: {
		http.StatusInternalServerError, "fail", "Algo deu errado",
		"Não foi possível confirmar agora. Tente novamente em instantes.",
	},
}

type ConfirmWebHandler struct {
	confirmUC *ucAppointment.ConfirmByToken
	metrics   *metrics.Metrics
}

func NewConfirmWebHandler(confirmUC *ucAppointment.ConfirmByToken, m *metrics.Metrics) *ConfirmWebHandler {
	return &ConfirmWebHandler{confirmUC: confirmUC, metrics: m}
}

// Confirm é a página pública aberta pelo cliente: GET /confirm-appointment?token=
func (h *ConfirmWebHandler) Confirm(c *gin.Context) {
	res := h.confirmUC.Execute(c.Request.Context(), c.Query("token"))

	if h.metrics != nil {
		h.metrics.ConfirmOutcomes.WithLabelValues(string(res.Outcome)).Inc()
	}

	page, ok := confirmPages[res.Outcome]
	if !ok {
		page = confirmPages[confirmation.OutcomeError]
	}

	data := gin.H{
		"Outcome": res.Outcome,
		"Tone":    page.tone,
		"Title":   page.title,
		"Message": page.message,
	}
	if res.Appointment != nil {
		data["Appointment"] = res.Appointment
		data["Date"] = finance.DisplayDate(res.Appointment.Date)
	}

	c.Header("Cache-Control", "no-store")
	c.HTML(page.status, "confirm.html", data)
}
