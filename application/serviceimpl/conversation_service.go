// application/serviceimpl/conversation_service.go
package serviceimpl

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/repository"
	"github.com/saiyasanth/chatapp/domain/service"
	"gorm.io/gorm"
)

type conversationService struct {
	conversationRepo repository.ConversationRepository
}

func NewConversationService(conversationRepo repository.ConversationRepository) service.ConversationService {
	return &conversationService{conversationRepo: conversationRepo}
}

func (s *conversationService) GetConversations(userID uuid.UUID) ([]*models.Conversation, error) {
	conversations, err := s.conversationRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}
	return conversations, nil
}

// GetConversation answers ErrConversationNotFound for both a missing id and a
// conversation the caller is not part of, so outsiders cannot probe for
// existence.
func (s *conversationService) GetConversation(userID, conversationID uuid.UUID) (*models.Conversation, error) {
	conversation, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	for _, participant := range conversation.Participants {
		if participant.UserID == userID {
			return conversation, nil
		}
	}
	return nil, service.ErrConversationNotFound
}

func (s *conversationService) GetConversationWith(userID, otherID uuid.UUID) (*models.Conversation, error) {
	conversation, err := s.conversationRepo.FindByParticipants(userID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return conversation, nil
}
