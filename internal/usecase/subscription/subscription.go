package subscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	"github.com/BruksfildServices01/belezasmart/internal/cache"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/payment"
)

type SubscriberRepository interface {
	GetSubscriberByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	UpsertSubscriber(ctx context.Context, s *models.Subscriber) error
}

type Status struct {
	Subscribed       bool       `json:"subscribed"`
	SubscriptionTier *string    `json:"subscription_tier,omitempty"`
	SubscriptionEnd  *time.Time `json:"subscription_end,omitempty"`
}

func cacheKey(email string) string {
	return "subscription:" + strings.ToLower(email)
}

// ======================================================
// CHECKOUT
// ======================================================

type Checkout struct {
	gateway payment.Gateway
	cache   cache.Cache
	audit   *audit.Dispatcher
}

func NewCheckout(gateway payment.Gateway, c cache.Cache, audit *audit.Dispatcher) *Checkout {
	return &Checkout{gateway: gateway, cache: c, audit: audit}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	userID uint,
	email string,
	rawPlan string,
) (string, error) {

	plan, ok := payment.ParsePlan(rawPlan)
	if !ok {
		return "", httperr.ErrBusiness("invalid_plan")
	}

	url, err := uc.gateway.CreateCheckout(ctx, payment.CheckoutRequest{
		UserID: userID,
		Email:  email,
		Plan:   plan,
	})
	if err != nil {
		return "", err
	}

	// o próximo check deve consultar o provedor
	_ = uc.cache.Delete(ctx, cacheKey(email))

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "checkout_started",
		Entity:   "subscription",
		Metadata: map[string]any{"plan": plan},
	})

	return url, nil
}

// ======================================================
// PORTAL
// ======================================================

type Portal struct {
	gateway     payment.Gateway
	subscribers SubscriberRepository
}

func NewPortal(gateway payment.Gateway, subscribers SubscriberRepository) *Portal {
	return &Portal{gateway: gateway, subscribers: subscribers}
}

func (uc *Portal) Execute(ctx context.Context, email string) (string, error) {
	_, err := uc.subscribers.GetSubscriberByEmail(ctx, email)
	if errors.Is(err, httperr.ErrNotFound) {
		return "", httperr.ErrBusiness("no_subscription")
	}
	if err != nil {
		return "", err
	}
	return uc.gateway.PortalURL(), nil
}

// ======================================================
// CHECK
// ======================================================

type CheckSubscription struct {
	gateway     payment.Gateway
	subscribers SubscriberRepository
	cache       cache.Cache
	ttl         time.Duration
	log         logrus.FieldLogger
}

func NewCheckSubscription(
	gateway payment.Gateway,
	subscribers SubscriberRepository,
	c cache.Cache,
	ttl time.Duration,
	log logrus.FieldLogger,
) *CheckSubscription {
	return &CheckSubscription{
		gateway:     gateway,
		subscribers: subscribers,
		cache:       c,
		ttl:         ttl,
		log:         log,
	}
}

// Execute consulta o provedor (ou o cache) e espelha o resultado na
// tabela subscribers, chaveada pelo e-mail.
func (uc *CheckSubscription) Execute(
	ctx context.Context,
	userID uint,
	email string,
) (*Status, error) {

	key := cacheKey(email)

	var cached Status
	found, err := cache.GetJSON(ctx, uc.cache, key, &cached)
	if err != nil {
		uc.log.WithError(err).Warn("subscription cache read failed")
	}
	if found {
		return &cached, nil
	}

	sub, err := uc.gateway.FindSubscription(ctx, email)
	if err != nil {
		return nil, err
	}

	status := &Status{}
	row := &models.Subscriber{
		UserID: userID,
		Email:  email,
	}

	if sub != nil {
		row.PreapprovalID = sub.ID
		if sub.Active {
			status.Subscribed = true
			status.SubscriptionEnd = sub.NextPayment
			if sub.Plan != "" {
				tier := string(sub.Plan)
				status.SubscriptionTier = &tier
			}
		}
	}

	row.Subscribed = status.Subscribed
	row.SubscriptionTier = status.SubscriptionTier
	row.SubscriptionEnd = status.SubscriptionEnd

	if err := uc.subscribers.UpsertSubscriber(ctx, row); err != nil {
		return nil, err
	}

	if uc.ttl > 0 {
		if err := cache.SetJSON(ctx, uc.cache, key, status, uc.ttl); err != nil {
			uc.log.WithError(err).Warn("subscription cache write failed")
		}
	}

	return status, nil
}
