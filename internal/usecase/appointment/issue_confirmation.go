package appointment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	domain "github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/domain/finance"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/phone"
)

const ConfirmPath = "/confirm-appointment"

type ConfirmationLink struct {
	Token      string             `json:"token"`
	ConfirmURL string             `json:"confirm_url"`
	ExpiresAt  time.Time          `json:"expires_at"`
	Message    string             `json:"message"`
	Links      phone.MessageLinks `json:"whatsapp"`
}

type IssueConfirmationLink struct {
	repo     domain.ConfirmationRepository
	phones   *phone.Normalizer
	audit    *audit.Dispatcher
	baseURL  string
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

func NewIssueConfirmationLink(
	repo domain.ConfirmationRepository,
	phones *phone.Normalizer,
	audit *audit.Dispatcher,
	baseURL string,
	ttl time.Duration,
) *IssueConfirmationLink {
	return &IssueConfirmationLink{
		repo:     repo,
		phones:   phones,
		audit:    audit,
		baseURL:  strings.TrimRight(baseURL, "/"),
		ttl:      ttl,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

func (uc *IssueConfirmationLink) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	userAgent string,
) (*ConfirmationLink, error) {

	ap, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, lookupError(err, "appointment_not_found")
	}

	if strings.TrimSpace(ap.ClientPhone) == "" {
		return nil, httperr.ErrBusiness("missing_client_phone")
	}

	tok := &models.ConfirmationToken{
		Token:         uc.newToken(),
		AppointmentID: ap.ID,
		UserID:        userID,
		ExpiresAt:     uc.now().Add(uc.ttl),
	}
	if err := uc.repo.CreateConfirmationToken(ctx, tok); err != nil {
		return nil, err
	}

	confirmURL := uc.baseURL + ConfirmPath + "?token=" + url.QueryEscape(tok.Token)
	message := confirmationMessage(ap, confirmURL)
	normalized := uc.phones.Normalize(ap.ClientPhone)

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "confirmation_link_issued",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &ConfirmationLink{
		Token:      tok.Token,
		ConfirmURL: confirmURL,
		ExpiresAt:  tok.ExpiresAt,
		Message:    message,
		Links:      phone.BuildLinks(normalized, message, userAgent),
	}, nil
}

func confirmationMessage(ap *models.Appointment, confirmURL string) string {
	return fmt.Sprintf(
		"Olá, %s! Seu horário de %s está marcado para %s às %s. "+
			"Para confirmar, acesse: %s",
		ap.ClientName,
		ap.Service,
		finance.DisplayDate(ap.Date),
		ap.Time,
		confirmURL,
	)
}
