package migration

import (
	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/pkg/logger"
)

// Run migrates the schema and seeds baseline data
func Run(db *gorm.DB) error {
	log := logger.GetLogger()

	if err := db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.ActivationToken{},
		&domain.Board{},
		&domain.Note{},
		&domain.Link{},
	); err != nil {
		return err
	}

	if err := seedRoles(db); err != nil {
		return err
	}

	log.Info().Msg("Database migration completed")
	return nil
}

func seedRoles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Role{}).Where("name = ?", domain.RoleUser).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&domain.Role{Name: domain.RoleUser}).Error
}
