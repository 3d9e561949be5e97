package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name          string          `gorm:"size:100;not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category      string          `gorm:"size:50" json:"category"`
	Unit          string          `gorm:"size:20" json:"unit"`
	MinStockLevel *int            `json:"min_stock_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Estoque 1:1 com Product
type Inventory struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"index;not null" json:"user_id"`
	ProductID uint `gorm:"uniqueIndex;not null" json:"product_id"`

	Quantity    int                 `gorm:"not null;default:0" json:"quantity"`
	MinStock    int                 `gorm:"not null;default:0" json:"min_stock"`
	CostPerUnit decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost_per_unit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Inventory) TableName() string {
	return "product_inventory"
}
