package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/belezasmart/internal/config"
	"github.com/BruksfildServices01/belezasmart/internal/models"
)

func NewDB(cfg *config.Config, log *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate")
	}

	if err := db.Exec(`
        UPDATE profiles
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.DefaultTimezone).Error; err != nil {
		log.WithError(err).Warn("failed to backfill profile timezone")
	}

	if n, err := CanonicalizeStatuses(db); err != nil {
		log.WithError(err).Warn("failed to canonicalize appointment statuses")
	} else if n > 0 {
		log.WithField("rows", n).Info("legacy appointment statuses migrated")
	}

	return db
}

// Migrate cria/atualiza todas as tabelas da aplicação.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Client{},
		&models.Professional{},
		&models.Service{},
		&models.Product{},
		&models.Inventory{},
		&models.Appointment{},
		&models.Transaction{},
		&models.ConfirmationToken{},
		&models.Subscriber{},
		&models.AuditLog{},
	)
}
