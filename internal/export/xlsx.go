package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/belezasmart/internal/domain/finance"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName       = "Transações"
	redHex          = "C0392B"
	moneyFormat     = `"R$" #,##0.00;-"R$" #,##0.00`
)

// WriteXLSX grava a planilha de transações: cabeçalho, uma linha por
// transação e a linha final de total. Valores negativos ficam em vermelho.
func WriteXLSX(w io.Writer, rows []finance.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"EDE7F6"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(moneyFormat)})
	if err != nil {
		return err
	}
	moneyRed, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Color: redHex},
		CustomNumFmt: strPtr(moneyFormat),
	})
	if err != nil {
		return err
	}
	total, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	totalRed, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: redHex},
		CustomNumFmt: strPtr(moneyFormat),
	})
	if err != nil {
		return err
	}
	totalMoney, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: strPtr(moneyFormat),
	})
	if err != nil {
		return err
	}

	for i, col := range finance.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", header); err != nil {
		return err
	}

	for i, row := range rows {
		line := i + 2
		values := []any{row.Tipo, row.Descricao, row.Data, row.Profissional, row.Valor.InexactFloat64()}

		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, line)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}

		first, _ := excelize.CoordinatesToCellName(1, line)
		last, _ := excelize.CoordinatesToCellName(5, line)

		style := money
		switch {
		case row.Total && row.Expense:
			style = totalRed
		case row.Total:
			style = totalMoney
		case row.Expense:
			style = moneyRed
		}

		if row.Total {
			if err := f.SetCellStyle(sheetName, first, last, total); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(sheetName, last, last, style); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "E", 16); err != nil {
		return err
	}

	return f.Write(w)
}

func strPtr(s string) *string { return &s }
