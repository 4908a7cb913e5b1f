// infrastructure/persistence/postgres/friend_request_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/repository"
	"gorm.io/gorm"
)

type friendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) repository.FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(request *models.FriendRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	return r.db.Create(request).Error
}

func (r *friendRequestRepository) FindByID(id uuid.UUID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.FriendRequest{}, "id = ?", id).Error
}

func (r *friendRequestRepository) FindPendingBetween(userID, otherID uuid.UUID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userID, otherID, otherID, userID).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRequestRepository) FindByRecipient(recipientID uuid.UUID) ([]*models.FriendRequest, error) {
	var requests []*models.FriendRequest
	if err := r.db.Preload("Sender").Where("recipient_id = ?", recipientID).
		Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *friendRequestRepository) FindBySender(senderID uuid.UUID) ([]*models.FriendRequest, error) {
	var requests []*models.FriendRequest
	if err := r.db.Preload("Recipient").Where("sender_id = ?", senderID).
		Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Accept performs the pending -> accepted transition as one transaction. The
// delete of the request row is the linearization point: a concurrent accept of
// the same id deletes zero rows and the losing transaction rolls back, so the
// friendship edges and the conversation are created at most once.
func (r *friendRequestRepository) Accept(id uuid.UUID) (*repository.AcceptResult, error) {
	var result repository.AcceptResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var request models.FriendRequest
		if err := tx.Where("id = ?", id).First(&request).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.FriendRequest{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		now := time.Now()
		edges := []*models.Friendship{
			{ID: uuid.New(), UserID: request.SenderID, FriendID: request.RecipientID, CreatedAt: now},
			{ID: uuid.New(), UserID: request.RecipientID, FriendID: request.SenderID, CreatedAt: now},
		}
		if err := tx.Create(&edges).Error; err != nil {
			return err
		}

		conversation := &models.Conversation{
			ID:        uuid.New(),
			CreatedAt: now,
			Participants: []*models.ConversationParticipant{
				{ID: uuid.New(), UserID: request.SenderID, JoinedAt: now},
				{ID: uuid.New(), UserID: request.RecipientID, JoinedAt: now},
			},
		}
		if err := tx.Create(conversation).Error; err != nil {
			return err
		}

		result.Request = &request
		result.Conversation = conversation
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
