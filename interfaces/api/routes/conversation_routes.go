// interfaces/api/routes/conversation_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/interfaces/api/handler"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
)

func SetupConversationRoutes(router fiber.Router, authMiddleware *middleware.AuthMiddleware, conversationHandler *handler.ConversationHandler) {
	conversations := router.Group("/conversations", authMiddleware.Protected())

	conversations.Get("/", conversationHandler.GetConversations)
	conversations.Get("/with/:userId", conversationHandler.GetConversationWith)
	conversations.Get("/:id", conversationHandler.GetConversation)
}
