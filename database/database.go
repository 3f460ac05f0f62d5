// database.go - Handles database connection and migrations

package database

import (
	"go-cafe-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite database and migrates the schema. TranslateError
// is on so unique-index violations surface as gorm.ErrDuplicatedKey and the
// store can map them to the duplicate sentinels.
func Connect(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Cafe{}, &models.Comment{}); err != nil {
		return nil, err
	}

	return db, nil
}
