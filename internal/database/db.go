package database

import (
	"facturas/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnection opens the database through GORM and migrates the schema.
// A postgres DSN selects the postgres driver; an empty DSN falls back to the
// sqlite file at sqlitePath.
func NewConnection(dsn, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Client{},
		&model.Supplier{},
		&model.Invoice{},
		&model.Expense{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
