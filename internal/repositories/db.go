package repositories

import (
	"log"

	"github.com/nikhilsahni7/medquery/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the SQLite file (created on first run if absent)
// and migrates the schema.
func ConnectDatabase(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.QueryRecord{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Successfully connected to database")
	return db
}
