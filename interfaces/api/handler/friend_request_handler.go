// interfaces/api/handler/friend_request_handler.go
package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/domain/dto"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

// FriendRequestHandler is the read-only REST surface over the friend request
// state. Mutations go through the WebSocket protocol.
type FriendRequestHandler struct {
	friendRequestService service.FriendRequestService
}

func NewFriendRequestHandler(friendRequestService service.FriendRequestService) *FriendRequestHandler {
	return &FriendRequestHandler{friendRequestService: friendRequestService}
}

// GetFriends lists the authenticated user's friends.
func (h *FriendRequestHandler) GetFriends(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	friends, err := h.friendRequestService.GetFriends(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch friends")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"friends": friends,
	})
}

// GetPendingRequests lists requests waiting on the authenticated user.
func (h *FriendRequestHandler) GetPendingRequests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendRequestService.GetPendingRequests(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch pending requests")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": toRequestData(requests),
	})
}

// GetSentRequests lists requests the authenticated user has sent and that are
// still pending.
func (h *FriendRequestHandler) GetSentRequests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendRequestService.GetSentRequests(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch sent requests")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": toRequestData(requests),
	})
}

func toRequestData(requests []*models.FriendRequest) []dto.FriendRequestData {
	out := make([]dto.FriendRequestData, 0, len(requests))
	for _, r := range requests {
		data := dto.FriendRequestData{
			ID:          r.ID.String(),
			SenderID:    r.SenderID.String(),
			RecipientID: r.RecipientID.String(),
			CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		}
		if r.Sender != nil {
			data.Sender = r.Sender.Username
		}
		if r.Recipient != nil {
			data.Recipient = r.Recipient.Username
		}
		out = append(out, data)
	}
	return out
}
