package confirmation

import (
	"time"

	"github.com/BruksfildServices01/belezasmart/internal/models"
)

// Outcome é o resultado exibido na página pública de confirmação.
type Outcome string

const (
	OutcomeConfirmed        Outcome = "confirmed"
	OutcomeAlreadyConfirmed Outcome = "already_confirmed"
	OutcomeExpired          Outcome = "expired"
	OutcomeNotFound         Outcome = "not_found"
	OutcomeMissing          Outcome = "missing"
	OutcomeError            Outcome = "error"
)

// Check avalia um token existente. O uso é verificado antes da validade,
// de modo que um link já usado sempre resulta em "já confirmado".
// Retorna "" quando o token pode ser consumido.
func Check(tok *models.ConfirmationToken, now time.Time) Outcome {
	if tok == nil {
		return OutcomeNotFound
	}
	if tok.UsedAt != nil {
		return OutcomeAlreadyConfirmed
	}
	if !now.Before(tok.ExpiresAt) {
		return OutcomeExpired
	}
	return ""
}
