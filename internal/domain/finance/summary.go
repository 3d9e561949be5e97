package finance

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// Summarize soma receitas e despesas em aritmética decimal exata.
// Valores são tratados em módulo; o tipo define o sinal.
func Summarize(txs []models.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range txs {
		switch tx.Tipo {
		case models.TransactionIncome:
			income = income.Add(tx.Valor.Abs())
		case models.TransactionExpense:
			expense = expense.Add(tx.Valor.Abs())
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// Row é uma linha de exportação (PDF/planilha).
type Row struct {
	Tipo         string
	Descricao    string
	Data         string
	Profissional string
	Valor        decimal.Decimal
	Expense      bool
	Total        bool
}

var Columns = []string{"Tipo", "Descrição", "Data", "Profissional", "Valor"}

// Rows monta as linhas exportadas: uma por transação, com despesas em
// valor negativo, e uma linha final "Total" com o saldo.
func Rows(txs []models.Transaction, names Names) []Row {
	rows := make([]Row, 0, len(txs)+1)

	for _, tx := range txs {
		expense := tx.Tipo == models.TransactionExpense

		valor := tx.Valor.Abs()
		tipo := "Receita"
		if expense {
			valor = valor.Neg()
			tipo = "Despesa"
		}

		desc := tx.Descricao
		if desc == "" {
			desc = tx.Nome
		}

		rows = append(rows, Row{
			Tipo:         tipo,
			Descricao:    desc,
			Data:         DisplayDate(tx.Data),
			Profissional: names.Professional(tx.ProfessionalID),
			Valor:        valor,
			Expense:      expense,
		})
	}

	balance := Summarize(txs).Balance
	rows = append(rows, Row{
		Tipo:    "Total",
		Valor:   balance,
		Expense: balance.IsNegative(),
		Total:   true,
	})

	return rows
}
