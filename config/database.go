package config

import (
	"fmt"
	"time"

	"lifeos/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the database connection and migrates the schema.
func InitDB(config Config) error {
	var dialector gorm.Dialector
	switch config.DBDriver {
	case "mysql":
		dialector = mysql.Open(config.GetDBConnString())
	default:
		dialector = sqlite.Open(config.DBPath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Cascades and nulling of weak references are handled in the
		// controllers, not by database constraints.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := MigrateDB(DB); err != nil {
		return fmt.Errorf("database migration failed: %v", err)
	}

	return nil
}

// MigrateDB auto-migrates all tables.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Task{},
		&models.Subtask{},
		&models.Session{},
		&models.Note{},
	)
}
