// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/interfaces/api/handler"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

// SetupRoutes mounts the whole REST surface.
func SetupRoutes(
	app *fiber.App,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	friendRequestHandler *handler.FriendRequestHandler,
	userHandler *handler.UserHandler,
	conversationHandler *handler.ConversationHandler,
	presenceHandler *handler.PresenceHandler,
) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	SetupAuthRoutes(api, authHandler)
	SetupFriendRoutes(api, authMiddleware, friendRequestHandler)
	SetupUserRoutes(api, authMiddleware, userHandler)
	SetupConversationRoutes(api, authMiddleware, conversationHandler)
	SetupPresenceRoutes(api, authMiddleware, presenceHandler)
}
