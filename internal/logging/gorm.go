package logging

import (
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes SQL warnings and errors through the service logger.
func GormLogger() gormlogger.Interface {
	return gormlogger.New(Logger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
