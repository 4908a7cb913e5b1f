// domain/service/user_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
)

type UserService interface {
	GetUser(id uuid.UUID) (*models.User, error)
	SearchUsers(query string, limit int) ([]*models.User, error)
}
