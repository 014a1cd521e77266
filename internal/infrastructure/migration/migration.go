// Package migration manages database schema migrations. Production uses
// the embedded goose scripts; development can fall back to gorm
// AutoMigrate over the persistence models.
package migration

import (
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
)

// Models lists every persistence model, in dependency order, for the
// auto-migrate strategy.
func Models() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.ReportModel{},
	}
}

// Manager picks a strategy by environment: embedded goose scripts in
// production, gorm AutoMigrate elsewhere.
type Manager struct {
	strategy Strategy
}

func NewManager(environment string) *Manager {
	var strategy Strategy
	if environment == "production" {
		strategy = NewGooseStrategy()
	} else {
		strategy = NewAutoMigrateStrategy()
	}
	return &Manager{strategy: strategy}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	return m.strategy.Migrate(db, Models()...)
}

func (m *Manager) StrategyName() string {
	return m.strategy.GetName()
}
