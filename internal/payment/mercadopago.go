package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/shopspring/decimal"

	appconfig "github.com/BruksfildServices01/belezasmart/internal/config"
)

const (
	statusAuthorized = "authorized"
	statusPending    = "pending"
	refSeparator     = ":"
)

type MercadoPago struct {
	client    preapproval.Client
	backURL   string
	portalURL string
	currency  string
	prices    map[string]decimal.Decimal
}

func NewMercadoPago(cfg appconfig.MercadoPagoConfig) (*MercadoPago, error) {
	mpCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:    preapproval.NewClient(mpCfg),
		backURL:   cfg.BackURL,
		portalURL: cfg.PortalURL,
		currency:  cfg.Currency,
		prices:    cfg.PlanPrices,
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, req CheckoutRequest) (string, error) {
	price, ok := m.prices[string(req.Plan)]
	if !ok || !price.IsPositive() {
		return "", fmt.Errorf("no price configured for plan %s", req.Plan)
	}

	res, err := m.client.Create(ctx, preapproval.Request{
		Reason:            "BelezaSmart " + req.Plan.Name(),
		ExternalReference: externalReference(req.UserID, req.Plan),
		PayerEmail:        req.Email,
		BackURL:           m.backURL,
		Status:            statusPending,
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: price.InexactFloat64(),
			CurrencyID:        m.currency,
		},
	})
	if err != nil {
		return "", fmt.Errorf("mercadopago create preapproval: %w", err)
	}

	return res.InitPoint, nil
}

func (m *MercadoPago) FindSubscription(ctx context.Context, email string) (*Subscription, error) {
	res, err := m.client.Search(ctx, preapproval.SearchRequest{
		Limit: 10,
		Filters: map[string]string{
			"payer_email": email,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago search preapproval: %w", err)
	}
	if res == nil || len(res.Results) == 0 {
		return nil, nil
	}

	// autorizada tem prioridade sobre pendente/cancelada
	pick := res.Results[0]
	for _, r := range res.Results {
		if r.Status == statusAuthorized {
			pick = r
			break
		}
	}

	sub := &Subscription{
		ID:     pick.ID,
		Status: pick.Status,
		Plan:   planFromReference(pick.ExternalReference),
		Active: pick.Status == statusAuthorized,
	}
	if !pick.NextPaymentDate.IsZero() {
		next := pick.NextPaymentDate
		sub.NextPayment = &next
	}
	return sub, nil
}

func (m *MercadoPago) PortalURL() string {
	return m.portalURL
}

// externalReference liga a preapproval ao usuário: "<userID>:<PLANO>".
func externalReference(userID uint, plan Plan) string {
	return strconv.FormatUint(uint64(userID), 10) + refSeparator + string(plan)
}

func planFromReference(ref string) Plan {
	_, raw, ok := strings.Cut(ref, refSeparator)
	if !ok {
		return ""
	}
	p, ok := ParsePlan(raw)
	if !ok {
		return ""
	}
	return p
}
