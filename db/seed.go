// db/seed.go
package db

import (
	"context"
	"errors"
	"log"
	"os"

	"toolroom/directory"
	"toolroom/models"

	"gorm.io/gorm"
)

// SeedDirectory loads the fixed user directory into postgres. Users are
// matched by email, so re-running on a populated database is a no-op.
// SEED_PASSWORD overrides the default demo password.
func SeedDirectory(ctx context.Context, repo *Repo) error {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "123"
	}
	users, err := directory.SeedUsers(password)
	if err != nil {
		return err
	}

	for _, u := range users {
		var existing models.User
		err := repo.DB.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := repo.DB.WithContext(ctx).Create(&u).Error; err != nil {
			return err
		}
		log.Printf("seeded user %s (%s)", u.Email, u.Role)
	}
	return nil
}
