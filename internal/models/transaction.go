package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "receita"
	TransactionExpense = "despesa"
)

type Transaction struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Tipo      string          `gorm:"size:10;not null" json:"tipo"`
	Nome      string          `gorm:"size:100" json:"nome"`
	Descricao string          `gorm:"size:255;not null" json:"descricao"`
	Valor     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Data      string          `gorm:"size:10;index;not null" json:"data"`

	ProfessionalID *uint `gorm:"index" json:"professional_id"`
	ClientID       *uint `gorm:"index" json:"client_id"`
	AgendamentoID  *uint `gorm:"index" json:"agendamento_id"`

	ProductID  *uint `gorm:"index" json:"product_id"`
	Quantidade *int  `json:"quantidade"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
