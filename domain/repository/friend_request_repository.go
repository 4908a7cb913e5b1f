// domain/repository/friend_request_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
)

// AcceptResult - everything the accept transaction materialized.
type AcceptResult struct {
	Request      *models.FriendRequest
	Conversation *models.Conversation
}

type FriendRequestRepository interface {
	Create(request *models.FriendRequest) error
	FindByID(id uuid.UUID) (*models.FriendRequest, error)
	Delete(id uuid.UUID) error

	// FindPendingBetween looks for a pending request in either direction of the
	// unordered pair.
	FindPendingBetween(userID, otherID uuid.UUID) (*models.FriendRequest, error)
	FindByRecipient(recipientID uuid.UUID) ([]*models.FriendRequest, error)
	FindBySender(senderID uuid.UUID) ([]*models.FriendRequest, error)

	// Accept runs the whole transition in one store transaction: create both
	// friendship edges, create the conversation, delete the request. The request
	// row acts as a compare-and-swap token - if it is already gone the whole
	// transaction rolls back with gorm.ErrRecordNotFound.
	Accept(id uuid.UUID) (*AcceptResult, error)
}
