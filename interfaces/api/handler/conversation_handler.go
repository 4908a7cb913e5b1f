// interfaces/api/handler/conversation_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

// ConversationHandler is the read surface over one-to-one threads. Threads are
// only ever created by accepting a friend request.
type ConversationHandler struct {
	conversationService service.ConversationService
}

func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// GetConversations lists the authenticated user's conversations.
func (h *ConversationHandler) GetConversations(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	conversations, err := h.conversationService.GetConversations(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch conversations")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"conversations": conversations,
	})
}

// GetConversation returns a single conversation the user participates in.
func (h *ConversationHandler) GetConversation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	conversationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid conversation id")
	}

	conversation, err := h.conversationService.GetConversation(userID, conversationID)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "conversation not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch conversation")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"conversation": conversation,
	})
}

// GetConversationWith resolves the thread between the user and a friend.
func (h *ConversationHandler) GetConversationWith(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	conversation, err := h.conversationService.GetConversationWith(userID, otherID)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "conversation not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch conversation")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"conversation": conversation,
	})
}
