package finance

import (
	"context"

	"github.com/BruksfildServices01/belezasmart/internal/domain/finance"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

type Lister[T any] interface {
	List(ctx context.Context, userID uint) ([]T, error)
}

type Report struct {
	Transactions []models.Transaction `json:"data"`
	Summary      finance.Summary      `json:"summary"`
	Names        finance.Names        `json:"-"`
}

// Rows devolve as linhas de exportação do relatório (com a linha de total).
func (r *Report) Rows() []finance.Row {
	return finance.Rows(r.Transactions, r.Names)
}

type BuildReport struct {
	txs           Lister[models.Transaction]
	professionals Lister[models.Professional]
	clients       Lister[models.Client]
}

func NewBuildReport(
	txs Lister[models.Transaction],
	professionals Lister[models.Professional],
	clients Lister[models.Client],
) *BuildReport {
	return &BuildReport{
		txs:           txs,
		professionals: professionals,
		clients:       clients,
	}
}

// Execute filtra as transações do usuário e resume o subconjunto filtrado.
func (uc *BuildReport) Execute(
	ctx context.Context,
	userID uint,
	filter finance.Filter,
) (*Report, error) {

	txs, err := uc.txs.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	names, err := uc.names(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := finance.Apply(txs, filter, names)

	return &Report{
		Transactions: filtered,
		Summary:      finance.Summarize(filtered),
		Names:        names,
	}, nil
}

func (uc *BuildReport) names(ctx context.Context, userID uint) (finance.Names, error) {
	pros, err := uc.professionals.List(ctx, userID)
	if err != nil {
		return finance.Names{}, err
	}
	clients, err := uc.clients.List(ctx, userID)
	if err != nil {
		return finance.Names{}, err
	}

	names := finance.Names{
		Professionals: make(map[uint]string, len(pros)),
		Clients:       make(map[uint]string, len(clients)),
	}
	for _, p := range pros {
		names.Professionals[p.ID] = p.Name
	}
	for _, c := range clients {
		names.Clients[c.ID] = c.Name
	}
	return names, nil
}
