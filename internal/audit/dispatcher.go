package audit

import "github.com/sirupsen/logrus"

type Event struct {
	UserID   uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	log    logrus.FieldLogger
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log logrus.FieldLogger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.WithError(err).WithField("action", ev.Action).Error("audit error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close drena a fila e aguarda o worker terminar.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
