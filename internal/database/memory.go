package database

import (
	"fmt"

	"lanchonete/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenMemory opens a private in-memory SQLite database, migrated and seeded
// with DefaultCategories. Each call returns an isolated database.
func OpenMemory(logger *zap.Logger) (*gorm.DB, error) {
	cfg := &config.Config{
		DBDriver:    "sqlite",
		DatabaseDSN: fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
	}
	db, err := Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedCategories(db); err != nil {
		return nil, err
	}
	return db, nil
}
