// domain/repository/conversation_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
)

type ConversationRepository interface {
	FindByID(id uuid.UUID) (*models.Conversation, error)
	FindByParticipants(userID, otherID uuid.UUID) (*models.Conversation, error)
	FindByUserID(userID uuid.UUID) ([]*models.Conversation, error)
	ParticipantIDs(conversationID uuid.UUID) ([]uuid.UUID, error)
}
