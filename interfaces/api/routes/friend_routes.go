// interfaces/api/routes/friend_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/interfaces/api/handler"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

// SetupFriendRoutes mounts the read-only friend state endpoints. Sending and
// accepting requests happens over the WebSocket protocol.
func SetupFriendRoutes(router fiber.Router, authMiddleware *middleware.AuthMiddleware, friendRequestHandler *handler.FriendRequestHandler) {
	friends := router.Group("/friends", authMiddleware.Protected())

	friends.Get("/", friendRequestHandler.GetFriends)
	friends.Get("/pending", friendRequestHandler.GetPendingRequests)
	friends.Get("/sent", friendRequestHandler.GetSentRequests)
}
