// interfaces/api/routes/presence_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/interfaces/api/handler"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

func SetupPresenceRoutes(router fiber.Router, authMiddleware *middleware.AuthMiddleware, presenceHandler *handler.PresenceHandler) {
	presence := router.Group("/presence", authMiddleware.Protected())

	presence.Get("/:userId", presenceHandler.GetPresence)
}
