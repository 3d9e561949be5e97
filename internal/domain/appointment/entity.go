package appointment

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyService copia nome e preço atual do serviço para o agendamento.
// O preço vira snapshot: alterações futuras no catálogo não o afetam.
func ApplyService(ap *models.Appointment, svc *models.Service) {
	id := svc.ID
	ap.ServiceID = &id
	ap.Service = svc.Name
	ap.ServiceValueAtAppointment = decimal.NewNullDecimal(svc.Price)
}

// ServiceChanged indica se o operador escolheu outro serviço na edição.
func ServiceChanged(ap *models.Appointment, serviceID uint) bool {
	return ap.ServiceID == nil || *ap.ServiceID != serviceID
}

// ApplyClient grava o snapshot de nome/e-mail/telefone do cliente.
func ApplyClient(ap *models.Appointment, c *models.Client) {
	id := c.ID
	ap.ClientID = &id
	ap.ClientName = c.Name
	ap.ClientEmail = c.Email
	ap.ClientPhone = c.Phone
}

func SetStatus(ap *models.Appointment, to Status) error {
	from, err := ParseStatus(ap.Status)
	if err != nil {
		// status desconhecido gravado por versões antigas: trata como agendado
		from = StatusScheduled
	}

	if err := CanTransition(from, to); err != nil {
		return err
	}

	ap.Status = string(to)
	return nil
}
