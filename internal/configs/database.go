package config

import (
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project-hub.com/project-hub/internal/logging"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// NewDatabaseClient opens the store. SQLite connections get foreign keys
// switched on; the schema relies on them.
func NewDatabaseClient(driver, dsn string) *gorm.DB {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(SQLiteDSN(dsn))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logging.GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		logging.Logger.Fatalf("db open failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logging.Logger.Fatalf("db handle failed: %v", err)
	}
	if driver == DriverPostgres {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	logging.Logger.WithField("driver", driver).Info("database connected")
	return db
}

// SQLiteDSN appends the foreign key pragma unless the caller already set it.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}
