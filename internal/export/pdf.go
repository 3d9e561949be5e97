package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/BruksfildServices01/belezasmart/internal/domain/finance"
)

const PDFContentType = "application/pdf"

var pdfWidths = []float64{24, 70, 26, 40, 30}

// WritePDF gera o relatório financeiro em PDF com as mesmas linhas da
// planilha. Despesas e saldo negativo saem em vermelho.
func WritePDF(w io.Writer, title string, summary finance.Summary, rows []finance.Row) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr(title), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Receitas: %s", BRL(summary.TotalIncome))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Despesas: %s", BRL(summary.TotalExpense))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Saldo: %s", BRL(summary.Balance))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ======================
	// Cabeçalho
	// ======================
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(237, 231, 246)
	for i, col := range finance.Columns {
		pdf.CellFormat(pdfWidths[i], 8, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// ======================
	// Linhas
	// ======================
	for _, row := range rows {
		style := ""
		if row.Total {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)

		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(pdfWidths[0], 7, tr(row.Tipo), "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfWidths[1], 7, tr(truncate(row.Descricao, 48)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfWidths[2], 7, tr(row.Data), "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfWidths[3], 7, tr(truncate(row.Profissional, 26)), "1", 0, "L", false, 0, "")

		if row.Expense {
			pdf.SetTextColor(192, 57, 43)
		}
		pdf.CellFormat(pdfWidths[4], 7, tr(BRL(row.Valor)), "1", 1, "R", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	return pdf.Output(w)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
