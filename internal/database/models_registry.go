package database

import "batshit/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Idea{},
		&models.Rating{},
		&models.UserStats{},
		&models.Friendship{},
	}
}
