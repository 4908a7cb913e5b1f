// interfaces/api/routes/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/interfaces/api/handler"
)

// SetupAuthRoutes mounts the account lifecycle endpoints. All of them are
// public, the session only exists after login.
func SetupAuthRoutes(router fiber.Router, authHandler *handler.AuthHandler) {
	auth := router.Group("/auth")

	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/verify/:token", authHandler.Verify)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)
}
