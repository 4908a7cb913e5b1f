// domain/repository/friendship_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
)

type FriendshipRepository interface {
	FindByUserID(userID uuid.UUID) ([]*models.Friendship, error)
	FriendIDs(userID uuid.UUID) ([]uuid.UUID, error)
	AreFriends(userID, otherID uuid.UUID) (bool, error)
}
