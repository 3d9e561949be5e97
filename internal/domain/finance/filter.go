package finance

import (
	"strconv"
	"strings"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type Filter struct {
	ProfessionalID *uint
	Search         string

	// Month/Year (1-12 / ano com 4 dígitos); zero desativa.
	Month int
	Year  int

	// Intervalo explícito YYYY-MM-DD, inclusivo; tem prioridade sobre Month/Year.
	From string
	To   string
}

// Names resolve ids em nomes para busca textual e exportação.
type Names struct {
	Professionals map[uint]string
	Clients       map[uint]string
}

func (n Names) Professional(id *uint) string {
	if id == nil || n.Professionals == nil {
		return ""
	}
	return n.Professionals[*id]
}

func (n Names) Client(id *uint) string {
	if id == nil || n.Clients == nil {
		return ""
	}
	return n.Clients[*id]
}

// Apply devolve o subconjunto filtrado preservando a ordem de entrada.
func Apply(txs []models.Transaction, f Filter, names Names) []models.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.ProfessionalID != nil {
			if tx.ProfessionalID == nil || *tx.ProfessionalID != *f.ProfessionalID {
				continue
			}
		}

		if !matchesPeriod(tx.Data, f) {
			continue
		}

		if search != "" && !matchesSearch(tx, search, names) {
			continue
		}

		out = append(out, tx)
	}
	return out
}

func matchesPeriod(date string, f Filter) bool {
	if f.From != "" || f.To != "" {
		// YYYY-MM-DD compara corretamente como string
		if f.From != "" && date < f.From {
			return false
		}
		if f.To != "" && date > f.To {
			return false
		}
		return true
	}

	if len(date) < 7 {
		return f.Year == 0 && f.Month == 0
	}

	if f.Year != 0 {
		y, err := strconv.Atoi(date[0:4])
		if err != nil || y != f.Year {
			return false
		}
	}
	if f.Month != 0 {
		m, err := strconv.Atoi(date[5:7])
		if err != nil || m != f.Month {
			return false
		}
	}
	return true
}

func matchesSearch(tx models.Transaction, search string, names Names) bool {
	fields := []string{
		tx.Descricao,
		tx.Nome,
		names.Professional(tx.ProfessionalID),
		names.Client(tx.ClientID),
		tx.Data,
		DisplayDate(tx.Data),
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// DisplayDate converte YYYY-MM-DD em DD/MM/YYYY sem conversão de fuso.
func DisplayDate(date string) string {
	if len(date) < 10 || date[4] != '-' || date[7] != '-' {
		return date
	}
	return date[8:10] + "/" + date[5:7] + "/" + date[0:4]
}
