package payment

import (
	"context"
	"errors"
	"strings"
	"time"
)

type Plan string

const (
	PlanAutonomo Plan = "AUTONOMO"
	PlanBasico   Plan = "BASICO"
	PlanPremium  Plan = "PREMIUM"
)

var planNames = map[Plan]string{
	PlanAutonomo: "Autônomo",
	PlanBasico:   "Básico",
	PlanPremium:  "Premium",
}

// ParsePlan aceita o código do plano sem diferenciar maiúsculas.
func ParsePlan(raw string) (Plan, bool) {
	p := Plan(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := planNames[p]
	return p, ok
}

func (p Plan) Name() string {
	return planNames[p]
}

type CheckoutRequest struct {
	UserID uint
	Email  string
	Plan   Plan
}

// Subscription é o estado da assinatura como o provedor informa.
type Subscription struct {
	ID          string
	Status      string
	Plan        Plan
	Active      bool
	NextPayment *time.Time
}

type Gateway interface {
	// CreateCheckout devolve a URL de pagamento da assinatura.
	CreateCheckout(ctx context.Context, req CheckoutRequest) (string, error)

	// FindSubscription devolve a assinatura mais recente do e-mail,
	// ou nil quando não existe nenhuma.
	FindSubscription(ctx context.Context, email string) (*Subscription, error)

	// PortalURL é a página de autoatendimento do assinante.
	PortalURL() string
}

// ErrDisabled é devolvido quando nenhum provedor foi configurado.
var ErrDisabled = errors.New("payment provider not configured")

type Disabled struct{}

func (Disabled) CreateCheckout(context.Context, CheckoutRequest) (string, error) {
	return "", ErrDisabled
}

func (Disabled) FindSubscription(context.Context, string) (*Subscription, error) {
	return nil, ErrDisabled
}

func (Disabled) PortalURL() string { return "" }
