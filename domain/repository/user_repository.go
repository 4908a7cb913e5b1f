// domain/repository/user_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error

	Search(query string, limit int) ([]*models.User, error)
	SetVerified(id uuid.UUID) error
	UpdatePassword(id uuid.UUID, passwordHash string) error
	TouchLastActive(id uuid.UUID) error
}
