package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BRL formata um valor como moeda brasileira: R$ 1.234,56 / -R$ 10,00.
// O arredondamento é feito no decimal; o printer só aplica os separadores.
func BRL(d decimal.Decimal) string {
	rounded := d.Round(2)

	p := message.NewPrinter(language.BrazilianPortuguese)
	out := "R$ " + p.Sprintf("%.2f", rounded.Abs().InexactFloat64())
	if rounded.IsNegative() {
		return "-" + out
	}
	return out
}
