// domain/service/notification_service.go
package service

import (
	"github.com/saiyasanth/chatapp/domain/models"
)

// NotificationService fans lifecycle events out to live connections. Delivery
// is best-effort and at-most-once: an offline recipient is silently skipped and
// no method here ever fails the calling operation.
type NotificationService interface {
	NotifyFriendRequestReceived(request *models.FriendRequest)
	NotifyFriendRequestAccepted(request *models.FriendRequest, conversation *models.Conversation)
}
