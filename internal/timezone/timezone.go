package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

const dateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location devolve o fuso do dono da conta, ou o padrão (São Paulo).
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today é a data civil (YYYY-MM-DD) de now no fuso tz.
func Today(now time.Time, tz string) string {
	return now.In(Location(tz)).Format(dateLayout)
}

// MonthBounds devolve o primeiro e o último dia do mês como YYYY-MM-DD.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}

// ParseYearMonth valida ano/mês vindos da query string.
func ParseYearMonth(year, month int) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("invalid year %d", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d", month)
	}
	return nil
}
