// domain/service/conversation_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
)

// ConversationService is the read surface over the conversations materialized
// by accepted friend requests. Callers only ever see conversations they are a
// participant of; anything else answers ErrConversationNotFound.
type ConversationService interface {
	GetConversations(userID uuid.UUID) ([]*models.Conversation, error)
	GetConversation(userID, conversationID uuid.UUID) (*models.Conversation, error)

	// GetConversationWith resolves the one-to-one thread between the caller
	// and another user.
	GetConversationWith(userID, otherID uuid.UUID) (*models.Conversation, error)
}
