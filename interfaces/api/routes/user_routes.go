// interfaces/api/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/interfaces/api/handler"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

func SetupUserRoutes(router fiber.Router, authMiddleware *middleware.AuthMiddleware, userHandler *handler.UserHandler) {
	users := router.Group("/users", authMiddleware.Protected())

	users.Get("/me", userHandler.GetMe)
	users.Get("/search", userHandler.SearchUsers)
}
