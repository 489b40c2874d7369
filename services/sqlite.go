package services

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/guestbook_api/services/repositories"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type SqliteService struct {
	context.DefaultService
	*repositories.GuestbookRepository

	db       *gorm.DB
	database string
}

const SQLITE_SVC = "sqlite_svc"

// Id returns Service ID
func (ds SqliteService) Id() string {
	return SQLITE_SVC
}

// Configure the service
func (ds *SqliteService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DB_DATABASE")
	if ds.database == "" {
		ds.database = "guestbook.db"
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() error {
	return ds.Open(ds.database)
}

// Open connects to the given sqlite path (":memory:" works) and migrates.
func (ds *SqliteService) Open(database string) (err error) {
	ds.database = database
	ds.db, err = gorm.Open(sqlite.Open(ds.database), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	// A single connection keeps ":memory:" databases shared across calls
	// and serializes sqlite writers.
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	ds.GuestbookRepository = repositories.NewGuestbookRepository(ds.db)
	if err := ds.GuestbookRepository.Migrate(); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.WithField("database", ds.database).Info("Database connected and migrated successfully")
	return nil
}

func (ds *SqliteService) Shutdown() {
	if ds.db == nil {
		return
	}
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}
