// file: nset/store/gormstore/open.go
package gormstore

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database behind dialect and dsn. SQL statements
// are traced through the given logger at warn level and up.
func Open(dialect, dsn string, zlog zerolog.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: NewLogAdapter(zlog, logger.Warn),
	}

	switch dialect {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), gcfg)
	case "mysql":
		return gorm.Open(mysql.Open(dsn), gcfg)
	case "postgres":
		return gorm.Open(postgres.Open(dsn), gcfg)
	default:
		return nil, fmt.Errorf("unsupported database dialect: %s", dialect)
	}
}
