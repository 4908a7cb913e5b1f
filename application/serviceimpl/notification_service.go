// application/serviceimpl/notification_service.go
package serviceimpl

import (
	"fmt"

	"github.com/saiyasanth/chatapp/domain/dto"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/port"
	"github.com/saiyasanth/chatapp/domain/repository"
	"github.com/saiyasanth/chatapp/domain/service"
)

type notificationService struct {
	wsPort   port.WebSocketPort
	userRepo repository.UserRepository
}

func NewNotificationService(wsPort port.WebSocketPort, userRepo repository.UserRepository) service.NotificationService {
	return &notificationService{
		wsPort:   wsPort,
		userRepo: userRepo,
	}
}

// NotifyFriendRequestReceived tells both parties about a new pending request.
// The sender gets a confirmation event, the recipient the actual notification.
func (s *notificationService) NotifyFriendRequestReceived(request *models.FriendRequest) {
	s.wsPort.BroadcastFriendRequestReceived(request.SenderID, dto.EventPayload{
		Severity: dto.SeverityInfo,
		Message:  "Friend request sent",
	})

	message := "You have a new friend request"
	if sender := s.resolveUsername(request); sender != "" {
		message = fmt.Sprintf("You have a new friend request from %s", sender)
	}
	s.wsPort.BroadcastFriendRequestReceived(request.RecipientID, dto.EventPayload{
		Severity: dto.SeverityInfo,
		Message:  message,
	})
}

// NotifyFriendRequestAccepted tells both participants the friendship is live.
func (s *notificationService) NotifyFriendRequestAccepted(request *models.FriendRequest, conversation *models.Conversation) {
	payload := dto.EventPayload{
		Severity: dto.SeveritySuccess,
		Message:  "Friend request accepted",
	}
	s.wsPort.BroadcastFriendRequestAccepted(request.SenderID, payload)
	s.wsPort.BroadcastFriendRequestAccepted(request.RecipientID, payload)
}

func (s *notificationService) resolveUsername(request *models.FriendRequest) string {
	if request.Sender != nil {
		return request.Sender.Username
	}
	sender, err := s.userRepo.FindByID(request.SenderID)
	if err != nil {
		return ""
	}
	return sender.Username
}
