// application/serviceimpl/friend_request_service.go
package serviceimpl

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/repository"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type friendRequestService struct {
	requestRepo    repository.FriendRequestRepository
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	notifications  service.NotificationService
}

func NewFriendRequestService(
	requestRepo repository.FriendRequestRepository,
	friendshipRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
	notifications service.NotificationService,
) service.FriendRequestService {
	return &friendRequestService{
		requestRepo:    requestRepo,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		notifications:  notifications,
	}
}

func (s *friendRequestService) SendRequest(fromID, toID uuid.UUID) (*models.FriendRequest, error) {
	if fromID == toID {
		return nil, service.ErrSelfRequest
	}

	sender, err := s.userRepo.FindByID(fromID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("load sender: %w", err)
	}

	recipient, err := s.userRepo.FindByID(toID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("load recipient: %w", err)
	}

	areFriends, err := s.friendshipRepo.AreFriends(fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("check friendship: %w", err)
	}
	if areFriends {
		return nil, service.ErrAlreadyFriends
	}

	// One pending request per unordered pair, regardless of direction.
	existing, err := s.requestRepo.FindPendingBetween(fromID, toID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check pending request: %w", err)
	}
	if existing != nil {
		return nil, service.ErrRequestAlreadyExists
	}

	request := &models.FriendRequest{
		SenderID:    fromID,
		RecipientID: toID,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("create friend request: %w", err)
	}
	request.Sender = sender
	request.Recipient = recipient

	logrus.WithFields(logrus.Fields{
		"request_id":   request.ID,
		"sender_id":    fromID,
		"recipient_id": toID,
	}).Info("friend request created")

	s.notifications.NotifyFriendRequestReceived(request)

	return request, nil
}

func (s *friendRequestService) AcceptRequest(requestID uuid.UUID) (*models.Conversation, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrRequestNotFound
		}
		return nil, fmt.Errorf("load friend request: %w", err)
	}

	if _, err := s.userRepo.FindByID(request.SenderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("load sender: %w", err)
	}
	if _, err := s.userRepo.FindByID(request.RecipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("load recipient: %w", err)
	}

	result, err := s.requestRepo.Accept(requestID)
	if err != nil {
		// The request row was gone by the time the transaction ran, meaning
		// another accept won the race.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrRequestNotFound
		}
		return nil, fmt.Errorf("accept friend request: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": result.Conversation.ID,
	}).Info("friend request accepted")

	s.notifications.NotifyFriendRequestAccepted(result.Request, result.Conversation)

	return result.Conversation, nil
}

func (s *friendRequestService) GetFriends(userID uuid.UUID) ([]*models.User, error) {
	ids, err := s.friendshipRepo.FriendIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("load friend ids: %w", err)
	}

	friends := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		friend, err := s.userRepo.FindByID(id)
		if err != nil {
			logrus.WithError(err).WithField("friend_id", id).Warn("skipping unresolvable friend")
			continue
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

func (s *friendRequestService) GetPendingRequests(userID uuid.UUID) ([]*models.FriendRequest, error) {
	return s.requestRepo.FindByRecipient(userID)
}

func (s *friendRequestService) GetSentRequests(userID uuid.UUID) ([]*models.FriendRequest, error) {
	return s.requestRepo.FindBySender(userID)
}
