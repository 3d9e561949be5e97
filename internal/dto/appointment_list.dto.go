package dto

import "github.com/shopspring/decimal"

type AppointmentListDTO struct {
	ID             uint             `json:"id"`
	Date           string           `json:"date"`
	Time           string           `json:"time"`
	Status         string           `json:"status"`
	StatusLabel    string           `json:"status_label"`
	ClientName     string           `json:"client_name"`
	ClientPhone    string           `json:"client_phone"`
	Service        string           `json:"service"`
	ServiceValue   *decimal.Decimal `json:"service_value"`
	ProfessionalID *uint            `json:"professional_id"`
	Notes          string           `json:"notes"`
}
