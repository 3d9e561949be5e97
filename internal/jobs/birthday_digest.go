package jobs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	clientDomain "github.com/BruksfildServices01/belezasmart/internal/domain/client"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/timezone"
)

type ProfileLister interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

type ClientLister interface {
	List(ctx context.Context, userID uint) ([]models.Client, error)
}

// BirthdayDigest percorre as contas e registra, na auditoria de cada
// uma, os aniversariantes do dia no fuso do salão.
type BirthdayDigest struct {
	profiles ProfileLister
	clients  ClientLister
	audit    *audit.Dispatcher
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewBirthdayDigest(
	profiles ProfileLister,
	clients ClientLister,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
) *BirthdayDigest {
	return &BirthdayDigest{
		profiles: profiles,
		clients:  clients,
		audit:    audit,
		log:      log,
		now:      time.Now,
	}
}

// Run devolve quantas contas receberam resumo.
func (j *BirthdayDigest) Run(ctx context.Context) int {
	profiles, err := j.profiles.ListProfiles(ctx)
	if err != nil {
		j.log.WithError(err).Error("birthday digest: list profiles")
		return 0
	}

	sent := 0
	for _, p := range profiles {
		clients, err := j.clients.List(ctx, p.ID)
		if err != nil {
			j.log.WithError(err).WithField("user_id", p.ID).Warn("birthday digest: list clients")
			continue
		}

		today := j.now().In(timezone.Location(p.Timezone))
		bdays := clientDomain.BirthdaysOn(clients, today)
		if len(bdays) == 0 {
			continue
		}

		names := make([]string, 0, len(bdays))
		for _, c := range bdays {
			names = append(names, c.Name)
		}

		j.audit.Dispatch(audit.Event{
			UserID: p.ID,
			Action: "birthday_digest",
			Entity: "client",
			Metadata: map[string]any{
				"date":    today.Format("2006-01-02"),
				"clients": names,
			},
		})
		sent++
	}

	j.log.WithField("accounts", sent).Info("birthday digest done")
	return sent
}

// Job adapta Run para o agendador.
func (j *BirthdayDigest) Job() func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		j.Run(ctx)
	}
}
