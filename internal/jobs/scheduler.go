package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/timezone"
)

type Scheduler struct {
	cron *cron.Cron
	log  logrus.FieldLogger
}

func NewScheduler(log logrus.FieldLogger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(timezone.Location(timezone.DefaultTimezone)),
			cron.WithLogger(cronLogger{log: log}),
			cron.WithChain(cron.Recover(cronLogger{log: log})),
		),
		log: log,
	}
}

// Add registra uma rotina; spec vazio desliga a rotina.
func (s *Scheduler) Add(name, spec string, job func()) error {
	if spec == "" {
		s.log.WithField("job", name).Info("job disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	s.log.WithFields(logrus.Fields{"job": name, "spec": spec}).Info("job scheduled")
	return nil
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop aguarda as rotinas em execução terminarem.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

type cronLogger struct {
	log logrus.FieldLogger
}

func (l cronLogger) Info(msg string, kv ...interface{}) {
	l.log.WithFields(fields(kv)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, kv ...interface{}) {
	l.log.WithError(err).WithFields(fields(kv)).Error(msg)
}

func fields(kv []interface{}) logrus.Fields {
	out := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		out[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return out
}
