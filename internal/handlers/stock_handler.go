package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/middleware"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	inventoryUC "github.com/BruksfildServices01/belezasmart/internal/usecase/inventory"
)

type ProductStore interface {
	OwnedStore[models.Product]
	CreateWithInventory(ctx context.Context, userID uint, p *models.Product, inv *models.Inventory) (bool, error)
}

type StockHandler struct {
	products    ProductStore
	inventories OwnedStore[models.Inventory]
	lowStock    *inventoryUC.ListLowStock
	log         logrus.FieldLogger
}

func NewStockHandler(
	products ProductStore,
	inventories OwnedStore[models.Inventory],
	lowStock *inventoryUC.ListLowStock,
	log logrus.FieldLogger,
) *StockHandler {
	return &StockHandler{
		products:    products,
		inventories: inventories,
		lowStock:    lowStock,
		log:         log,
	}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category" binding:"omitempty,max=50"`
	Unit          string          `json:"unit" binding:"omitempty,max=20"`
	MinStockLevel *int            `json:"min_stock_level" binding:"omitempty,min=0"`

	// estoque inicial
	Quantity    int              `json:"quantity" binding:"min=0"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Price         *decimal.Decimal `json:"price"`
	Category      *string          `json:"category" binding:"omitempty,max=50"`
	Unit          *string          `json:"unit" binding:"omitempty,max=20"`
	MinStockLevel *int             `json:"min_stock_level" binding:"omitempty,min=0"`
}

type UpdateInventoryRequest struct {
	Quantity    *int             `json:"quantity" binding:"omitempty,min=0"`
	MinStock    *int             `json:"min_stock" binding:"omitempty,min=0"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit"`
}

// ======================================================
// PRODUCTS
// ======================================================

func (h *StockHandler) ListProducts(c *gin.Context) {
	listOwned(c, h.log, h.products, "failed_to_list_products")
}

// CreateProduct cria o produto e o registro de estoque 1:1.
func (h *StockHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
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

	product := &models.Product{
		Name:          name,
		Price:         req.Price,
		Category:      strings.TrimSpace(req.Category),
		Unit:          strings.TrimSpace(req.Unit),
		MinStockLevel: req.MinStockLevel,
	}
	inv := &models.Inventory{Quantity: req.Quantity}
	if req.MinStockLevel != nil {
		inv.MinStock = *req.MinStockLevel
	}
	if req.CostPerUnit != nil {
		inv.CostPerUnit = decimal.NullDecimal{Decimal: *req.CostPerUnit, Valid: true}
	}

	ok, err := h.products.CreateWithInventory(c.Request.Context(), middleware.OwnerID(c), product, inv)
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_product")
		return
	}
	if !ok {
		notApplied(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"product":   product,
		"inventory": inv,
	})
}

func (h *StockHandler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
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
	if req.Price != nil {
		if req.Price.IsNegative() {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Unit != nil {
		fields["unit"] = strings.TrimSpace(*req.Unit)
	}
	if req.MinStockLevel != nil {
		fields["min_stock_level"] = *req.MinStockLevel
	}
	updateOwned(c, h.log, h.products, fields, "failed_to_update_product")
}

func (h *StockHandler) DeleteProduct(c *gin.Context) {
	deleteOwned(c, h.log, h.products, "", "failed_to_delete_product")
}

// ======================================================
// INVENTORY
// ======================================================

func (h *StockHandler) ListInventory(c *gin.Context) {
	listOwned(c, h.log, h.inventories, "failed_to_list_inventory")
}

// UpdateInventory é o ajuste manual de estoque.
func (h *StockHandler) UpdateInventory(c *gin.Context) {
	var req UpdateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := map[string]any{}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.MinStock != nil {
		fields["min_stock"] = *req.MinStock
	}
	if req.CostPerUnit != nil {
		fields["cost_per_unit"] = decimal.NullDecimal{Decimal: *req.CostPerUnit, Valid: true}
	}
	updateOwned(c, h.log, h.inventories, fields, "failed_to_update_inventory")
}

func (h *StockHandler) LowStock(c *gin.Context) {
	items, err := h.lowStock.Execute(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_low_stock")
		return
	}
	c.JSON(http.StatusOK, items)
}
