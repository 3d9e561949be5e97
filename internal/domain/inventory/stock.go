package inventory

import "github.com/BruksfildServices01/belezasmart/internal/models"

// ApplySale devolve a quantidade após a venda, nunca abaixo de zero.
func ApplySale(quantity, sold int) int {
	if sold < 0 {
		sold = 0
	}
	if sold >= quantity {
		return 0
	}
	return quantity - sold
}

type LowStockItem struct {
	ProductID     uint   `json:"product_id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	MinStockLevel int    `json:"min_stock_level"`
	Unit          string `json:"unit"`
}

func minStockLevel(p models.Product) int {
	if p.MinStockLevel == nil {
		return 0
	}
	return *p.MinStockLevel
}

// IsLowStock: quantidade em estoque <= nível mínimo do produto (0 se ausente).
// Produto sem registro de estoque conta como quantidade zero.
func IsLowStock(p models.Product, inv *models.Inventory) bool {
	qty := 0
	if inv != nil {
		qty = inv.Quantity
	}
	return qty <= minStockLevel(p)
}

// LowStock cruza produtos e estoques e devolve os itens em alerta,
// na ordem em que os produtos foram recebidos.
func LowStock(products []models.Product, inventories []models.Inventory) []LowStockItem {
	byProduct := make(map[uint]*models.Inventory, len(inventories))
	for i := range inventories {
		byProduct[inventories[i].ProductID] = &inventories[i]
	}

	out := make([]LowStockItem, 0)
	for _, p := range products {
		inv := byProduct[p.ID]
		if !IsLowStock(p, inv) {
			continue
		}

		qty := 0
		if inv != nil {
			qty = inv.Quantity
		}
		out = append(out, LowStockItem{
			ProductID:     p.ID,
			Name:          p.Name,
			Quantity:      qty,
			MinStockLevel: minStockLevel(p),
			Unit:          p.Unit,
		})
	}
	return out
}
