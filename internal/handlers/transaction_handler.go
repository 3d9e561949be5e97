package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/domain/finance"
	"github.com/BruksfildServices01/belezasmart/internal/export"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/middleware"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	ucFinance "github.com/BruksfildServices01/belezasmart/internal/usecase/finance"
)

type TransactionHandler struct {
	store    OwnedStore[models.Transaction]
	recordUC *ucFinance.RecordTransaction
	reportUC *ucFinance.BuildReport
	log      logrus.FieldLogger
}

func NewTransactionHandler(
	store OwnedStore[models.Transaction],
	recordUC *ucFinance.RecordTransaction,
	reportUC *ucFinance.BuildReport,
	log logrus.FieldLogger,
) *TransactionHandler {
	return &TransactionHandler{
		store:    store,
		recordUC: recordUC,
		reportUC: reportUC,
		log:      log,
	}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	Tipo      string          `json:"tipo" binding:"required,oneof=receita despesa"`
	Nome      string          `json:"nome" binding:"omitempty,max=100"`
	Descricao string          `json:"descricao" binding:"required,max=255"`
	Valor     decimal.Decimal `json:"valor"`
	Data      string          `json:"data" binding:"required"`

	ProfessionalID *uint `json:"professional_id"`
	ClientID       *uint `json:"client_id"`
	AgendamentoID  *uint `json:"agendamento_id"`
	ProductID      *uint `json:"product_id"`
	Quantidade     *int  `json:"quantidade" binding:"omitempty,min=1"`
}

type UpdateTransactionRequest struct {
	Tipo           *string          `json:"tipo" binding:"omitempty,oneof=receita despesa"`
	Nome           *string          `json:"nome" binding:"omitempty,max=100"`
	Descricao      *string          `json:"descricao" binding:"omitempty,min=1,max=255"`
	Valor          *decimal.Decimal `json:"valor"`
	Data           *string          `json:"data"`
	ProfessionalID *uint            `json:"professional_id"`
	ClientID       *uint            `json:"client_id"`
}

// ======================================================
// FILTRO
// ======================================================

// filterFromQuery lê professional_id, search, month, year, from, to.
func filterFromQuery(c *gin.Context) (finance.Filter, bool) {
	f := finance.Filter{
		Search: strings.TrimSpace(c.Query("search")),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}

	pid, ok := optionalUintQuery(c, "professional_id")
	if !ok {
		return f, false
	}
	f.ProfessionalID = pid

	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			httperr.BadRequest(c, "invalid_month", httperr.Message("invalid_month"))
			return f, false
		}
		f.Month = m
	}
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2100 {
			httperr.BadRequest(c, "invalid_year", httperr.Message("invalid_year"))
			return f, false
		}
		f.Year = y
	}
	if (f.From != "" && !isISODate(f.From)) || (f.To != "" && !isISODate(f.To)) {
		httperr.BadRequest(c, "invalid_date", httperr.Message("invalid_date"))
		return f, false
	}

	return f, true
}

// ======================================================
// LIST + SUMMARY
// ======================================================

func (h *TransactionHandler) List(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportUC.Execute(c.Request.Context(), middleware.OwnerID(c), filter)
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_transactions")
		return
	}

	c.JSON(http.StatusOK, report)
}

// ======================================================
// CREATE (com baixa de estoque)
// ======================================================

func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.recordUC.Execute(c.Request.Context(), ucFinance.RecordTransactionInput{
		UserID:         middleware.OwnerID(c),
		Tipo:           req.Tipo,
		Nome:           strings.TrimSpace(req.Nome),
		Descricao:      strings.TrimSpace(req.Descricao),
		Valor:          req.Valor,
		Data:           req.Data,
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		AgendamentoID:  req.AgendamentoID,
		ProductID:      req.ProductID,
		Quantidade:     req.Quantidade,
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_transaction")
		return
	}
	if res == nil {
		notApplied(c)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	var req UpdateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := map[string]any{}
	if req.Tipo != nil {
		fields["tipo"] = *req.Tipo
	}
	if req.Nome != nil {
		fields["nome"] = strings.TrimSpace(*req.Nome)
	}
	if req.Descricao != nil {
		fields["descricao"] = strings.TrimSpace(*req.Descricao)
	}
	if req.Valor != nil {
		if req.Valor.IsNegative() {
			httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
			return
		}
		fields["valor"] = *req.Valor
	}
	if req.Data != nil {
		if !isISODate(*req.Data) {
			httperr.BadRequest(c, "invalid_date", httperr.Message("invalid_date"))
			return
		}
		fields["data"] = *req.Data
	}
	if req.ProfessionalID != nil {
		fields["professional_id"] = *req.ProfessionalID
	}
	if req.ClientID != nil {
		fields["client_id"] = *req.ClientID
	}
	updateOwned(c, h.log, h.store, fields, "failed_to_update_transaction")
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	deleteOwned(c, h.log, h.store, "", "failed_to_delete_transaction")
}

// ======================================================
// EXPORT
// ======================================================

func (h *TransactionHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx", export.XLSXContentType, func(buf *bytes.Buffer, r *ucFinance.Report) error {
		return export.WriteXLSX(buf, r.Rows())
	})
}

func (h *TransactionHandler) ExportPDF(c *gin.Context) {
	h.export(c, "pdf", export.PDFContentType, func(buf *bytes.Buffer, r *ucFinance.Report) error {
		return export.WritePDF(buf, "Relatório financeiro", r.Summary, r.Rows())
	})
}

// export gera o arquivo em memória para só então escrever a resposta.
func (h *TransactionHandler) export(
	c *gin.Context,
	ext string,
	contentType string,
	write func(*bytes.Buffer, *ucFinance.Report) error,
) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportUC.Execute(c.Request.Context(), middleware.OwnerID(c), filter)
	if err != nil {
		respondError(c, h.log, err, "failed_to_export_transactions")
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, report); err != nil {
		respondError(c, h.log, err, "failed_to_export_transactions")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transacoes.%s"`, ext))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
