// interfaces/api/handler/presence_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

type PresenceHandler struct {
	presenceService service.PresenceService
}

func NewPresenceHandler(presenceService service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presenceService: presenceService}
}

// GetPresence reports whether a user is online and their last seen timestamp.
func (h *PresenceHandler) GetPresence(c *fiber.Ctx) error {
	if _, err := middleware.GetUserUUID(c); err != nil {
		return err
	}

	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	online, err := h.presenceService.IsUserOnline(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch presence")
	}

	lastSeen, err := h.presenceService.LastSeen(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch presence")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"user_id":   userID.String(),
		"online":    online,
		"last_seen": lastSeen,
	})
}
