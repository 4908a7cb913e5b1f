// infrastructure/persistence/postgres/friendship_repository.go
package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/repository"
	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) FindByUserID(userID uuid.UUID) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	if err := r.db.Where("user_id = ?", userID).Find(&friendships).Error; err != nil {
		return nil, err
	}
	return friendships, nil
}

func (r *friendshipRepository) FriendIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *friendshipRepository) AreFriends(userID, otherID uuid.UUID) (bool, error) {
	var friendship models.Friendship
	err := r.db.Where("user_id = ? AND friend_id = ?", userID, otherID).First(&friendship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
