// domain/service/friend_request_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
)

// FriendRequestService is the request lifecycle manager: it is the only writer
// of FriendRequest, Friendship and Conversation records.
type FriendRequestService interface {
	// SendRequest creates a pending request from one user to another and
	// notifies both parties. Fails with ErrUserNotFound, ErrSelfRequest,
	// ErrAlreadyFriends or ErrRequestAlreadyExists without writing anything.
	SendRequest(fromID, toID uuid.UUID) (*models.FriendRequest, error)

	// AcceptRequest turns a pending request into a symmetric friendship and a
	// one-to-one conversation, deletes the request, and notifies both
	// participants. Fails with ErrRequestNotFound or ErrUserNotFound. Accepting
	// the same request twice behaves like ErrRequestNotFound the second time.
	AcceptRequest(requestID uuid.UUID) (*models.Conversation, error)

	GetFriends(userID uuid.UUID) ([]*models.User, error)
	GetPendingRequests(userID uuid.UUID) ([]*models.FriendRequest, error)
	GetSentRequests(userID uuid.UUID) ([]*models.FriendRequest, error)
}
