// interfaces/api/handler/user_handler.go
package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe returns the authenticated user's profile.
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// SearchUsers searches users by username or display name.
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	if _, err := middleware.GetUserUUID(c); err != nil {
		return err
	}

	query := c.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing query parameter q")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	users, err := h.userService.SearchUsers(query, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
	})
}
