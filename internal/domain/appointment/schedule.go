package appointment

import (
	"fmt"
	"regexp"
	"time"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
)

const (
	DateLayout = "2006-01-02"

	firstSlotMinutes = 8 * 60
	lastSlotMinutes  = 19*60 + 30
	slotStepMinutes  = 30
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// TimeSlots devolve a grade fixa de meia em meia hora (08:00 a 19:30).
func TimeSlots() []string {
	slots := make([]string, 0, (lastSlotMinutes-firstSlotMinutes)/slotStepMinutes+1)
	for m := firstSlotMinutes; m <= lastSlotMinutes; m += slotStepMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

func IsValidTimeSlot(hm string) bool {
	for _, s := range TimeSlots() {
		if s == hm {
			return true
		}
	}
	return false
}

func ValidateDate(date string) error {
	if !datePattern.MatchString(date) {
		return httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}

func ValidateTime(hm string) error {
	if !IsValidTimeSlot(hm) {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}
