package finance

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type TransactionCreator interface {
	Create(ctx context.Context, userID uint, tx *models.Transaction) (bool, error)
}

type InventoryAdjuster interface {
	DecrementOnSale(ctx context.Context, userID uint, productID uint, sold int) (int, error)
}

type RecordTransactionInput struct {
	UserID uint

	Tipo      string
	Nome      string
	Descricao string
	Valor     decimal.Decimal
	Data      string

	ProfessionalID *uint
	ClientID       *uint
	AgendamentoID  *uint

	ProductID  *uint
	Quantidade *int
}

type RecordTransactionResult struct {
	Transaction       *models.Transaction `json:"transaction"`
	InventoryQuantity *int                `json:"inventory_quantity,omitempty"`
	InventoryWarning  string              `json:"inventory_warning,omitempty"`
}

const inventoryWarning = "Transação registrada, mas não foi possível atualizar o estoque."

type RecordTransaction struct {
	txs       TransactionCreator
	inventory InventoryAdjuster
	audit     *audit.Dispatcher
	log       logrus.FieldLogger
}

func NewRecordTransaction(
	txs TransactionCreator,
	inventory InventoryAdjuster,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
) *RecordTransaction {
	return &RecordTransaction{
		txs:       txs,
		inventory: inventory,
		audit:     audit,
		log:       log,
	}
}

// Execute grava a transação e, se for venda de produto, baixa o estoque.
// A baixa não desfaz a transação quando falha: vira um aviso na resposta.
// Devolve nil sem erro quando não há usuário autenticado.
func (uc *RecordTransaction) Execute(
	ctx context.Context,
	in RecordTransactionInput,
) (*RecordTransactionResult, error) {

	if in.Tipo != models.TransactionIncome && in.Tipo != models.TransactionExpense {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	if err := domain.ValidateDate(in.Data); err != nil {
		return nil, err
	}
	if in.Valor.IsNegative() {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	tx := &models.Transaction{
		Tipo:           in.Tipo,
		Nome:           in.Nome,
		Descricao:      in.Descricao,
		Valor:          in.Valor,
		Data:           in.Data,
		ProfessionalID: in.ProfessionalID,
		ClientID:       in.ClientID,
		AgendamentoID:  in.AgendamentoID,
		ProductID:      in.ProductID,
		Quantidade:     in.Quantidade,
	}

	ok, err := uc.txs.Create(ctx, in.UserID, tx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "transaction_created",
		Entity:   "transaction",
		EntityID: &tx.ID,
	})

	result := &RecordTransactionResult{Transaction: tx}

	if tx.Tipo != models.TransactionIncome || tx.ProductID == nil ||
		tx.Quantidade == nil || *tx.Quantidade <= 0 {
		return result, nil
	}

	qty, err := uc.inventory.DecrementOnSale(ctx, in.UserID, *tx.ProductID, *tx.Quantidade)
	if err != nil {
		uc.log.WithError(err).WithFields(logrus.Fields{
			"transaction_id": tx.ID,
			"product_id":     *tx.ProductID,
			"quantity":       *tx.Quantidade,
		}).Warn("inventory adjustment failed after sale")
		result.InventoryWarning = inventoryWarning
		return result, nil
	}

	result.InventoryQuantity = &qty
	return result, nil
}
