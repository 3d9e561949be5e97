package appointment

import (
	"strings"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var allStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// rótulos antigos gravados pelo front-end antes da padronização
var legacyStatuses = map[string]Status{
	"agendado":   StatusScheduled,
	"pendente":   StatusScheduled,
	"confirmado": StatusConfirmed,
	"concluido":  StatusCompleted,
	"concluído":  StatusCompleted,
	"realizado":  StatusCompleted,
	"cancelado":  StatusCancelled,
}

var labels = map[Status]string{
	StatusScheduled: "Agendado",
	StatusConfirmed: "Confirmado",
	StatusCompleted: "Concluído",
	StatusCancelled: "Cancelado",
}

// transitions é consultada antes de persistir qualquer troca de status.
// O ciclo de vida é consultivo: todo par entre os quatro status é permitido.
var transitions = func() map[Status]map[Status]bool {
	t := make(map[Status]map[Status]bool, len(allStatuses))
	for _, from := range allStatuses {
		t[from] = make(map[Status]bool, len(allStatuses))
		for _, to := range allStatuses {
			t[from][to] = true
		}
	}
	return t
}()

// ===============================
// Parsing / Validations
// ===============================

// ParseStatus aceita as chaves canônicas e os rótulos legados.
func ParseStatus(raw string) (Status, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	for _, st := range allStatuses {
		if s == string(st) {
			return st, nil
		}
	}

	if st, ok := legacyStatuses[s]; ok {
		return st, nil
	}

	return "", httperr.ErrBusiness("invalid_status")
}

// LegacyStatuses devolve uma cópia do mapa rótulo legado → status canônico.
func LegacyStatuses() map[string]Status {
	out := make(map[string]Status, len(legacyStatuses))
	for k, v := range legacyStatuses {
		out[k] = v
	}
	return out
}

func Statuses() []Status {
	return append([]Status(nil), allStatuses...)
}

func CanTransition(from, to Status) error {
	next, ok := transitions[from]
	if !ok {
		return httperr.ErrBusiness("invalid_status")
	}
	if !next[to] {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}
