// infrastructure/persistence/postgres/conversation_repository.go
package postgres

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/repository"
	"gorm.io/gorm"
)

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) FindByID(id uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.Preload("Participants").Where("id = ?", id).First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// FindByParticipants matches the unordered pair: both users must be members of
// the same conversation.
func (r *conversationRepository) FindByParticipants(userID, otherID uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Preload("Participants").
		Where("id IN (?)",
			r.db.Model(&models.ConversationParticipant{}).
				Select("conversation_id").
				Where("user_id IN ?", []uuid.UUID{userID, otherID}).
				Group("conversation_id").
				Having("COUNT(DISTINCT user_id) = 2"),
		).First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindByUserID(userID uuid.UUID) ([]*models.Conversation, error) {
	var conversations []*models.Conversation
	err := r.db.Preload("Participants").
		Where("id IN (?)",
			r.db.Model(&models.ConversationParticipant{}).
				Select("conversation_id").
				Where("user_id = ?", userID),
		).Order("created_at DESC").Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *conversationRepository) ParticipantIDs(conversationID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.ConversationParticipant{}).
		Where("conversation_id = ?", conversationID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
