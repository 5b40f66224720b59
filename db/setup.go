package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/models"
)

const connectAttempts = 5

// Connect opens a postgres-backed gorm pool and verifies it with a ping,
// retrying briefly so the service survives a database that is still
// starting. The handle is returned, not stashed in a package global;
// callers wire it into the stores at startup.
func Connect(dsn string) (*gorm.DB, error) {
	var lastErr error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := gdb.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					return gdb, nil
				} else {
					lastErr = pingErr
				}
			} else {
				lastErr = dbErr
			}
		} else {
			lastErr = err
		}

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, lastErr)
}

func Migrate(gdb *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.WorkoutType{},
		&models.ExerciseType{},
		&models.Workout{},
		&models.Exercise{},
	}

	migrator := gdb.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := gdb.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
