package directory

import (
	"toolroom/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedUsers builds the fixed demo directory: two toolroom staff and one
// purchaser, all sharing the given password.
func SeedUsers(password string) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return []models.User{
		{ID: uuid.NewString(), Name: "João Silva", Email: "joao@empresa.com", Role: models.RoleStaff, PasswordHash: string(hash)},
		{ID: uuid.NewString(), Name: "Maria Santos", Email: "maria@empresa.com", Role: models.RoleStaff, PasswordHash: string(hash)},
		{ID: uuid.NewString(), Name: "Carlos Compras", Email: "compras@empresa.com", Role: models.RolePurchaser, PasswordHash: string(hash)},
	}, nil
}
