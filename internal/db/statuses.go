package db

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/domain/appointment"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

// CanonicalizeStatuses reescreve status legados (rótulos em português)
// para as chaves canônicas. Retorna o total de linhas alteradas.
func CanonicalizeStatuses(db *gorm.DB) (int64, error) {
	var total int64
	for legacy, canonical := range appointment.LegacyStatuses() {
		res := db.Model(&models.Appointment{}).
			Where("LOWER(status) = ?", legacy).
			Update("status", string(canonical))
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}
