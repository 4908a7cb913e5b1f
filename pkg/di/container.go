// pkg/di/container.go
package di

import (
	"github.com/go-redis/redis/v8"
	"github.com/saiyasanth/chatapp/application/serviceimpl"
	"github.com/saiyasanth/chatapp/domain/port"
	"github.com/saiyasanth/chatapp/domain/repository"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/infrastructure/adapter"
	"github.com/saiyasanth/chatapp/infrastructure/mail"
	"github.com/saiyasanth/chatapp/infrastructure/persistence/postgres"
	"github.com/saiyasanth/chatapp/interfaces/api/handler"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
	"github.com/saiyasanth/chatapp/interfaces/websocket"
	"github.com/saiyasanth/chatapp/pkg/configs"
	"github.com/saiyasanth/chatapp/pkg/token"

	"gorm.io/gorm"
)

// Container holds every wired dependency of the application.
type Container struct {
	// Repositories
	UserRepo          repository.UserRepository
	FriendRequestRepo repository.FriendRequestRepository
	FriendshipRepo    repository.FriendshipRepository
	ConversationRepo  repository.ConversationRepository

	// WebSocket components
	WebSocketHub  *websocket.Hub
	WebSocketPort port.WebSocketPort

	// Services
	AuthService          service.AuthService
	UserService          service.UserService
	FriendRequestService service.FriendRequestService
	ConversationService  service.ConversationService
	NotificationService  service.NotificationService
	PresenceService      service.PresenceService

	// Handlers and middleware
	AuthMiddleware       *middleware.AuthMiddleware
	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	FriendRequestHandler *handler.FriendRequestHandler
	ConversationHandler  *handler.ConversationHandler
	PresenceHandler      *handler.PresenceHandler

	RedisClient *redis.Client
}

// NewContainer wires everything up. The hub is constructed first and gets the
// friend request service injected afterwards, because notifications flow back
// through the hub's adapter.
func NewContainer(db *gorm.DB, redisClient *redis.Client, mailConfig *configs.MailConfig, jwtSecret string) *Container {
	// Repositories
	userRepo := postgres.NewUserRepository(db)
	friendRequestRepo := postgres.NewFriendRequestRepository(db)
	friendshipRepo := postgres.NewFriendshipRepository(db)
	conversationRepo := postgres.NewConversationRepository(db)

	// Infrastructure
	tokenManager := token.NewManager(jwtSecret)
	mailer := mail.NewSMTPMailer(mailConfig)

	// Services without hub involvement
	authService := serviceimpl.NewAuthService(userRepo, mailer, tokenManager)
	userService := serviceimpl.NewUserService(userRepo)
	conversationService := serviceimpl.NewConversationService(conversationRepo)
	presenceService := serviceimpl.NewPresenceService(redisClient)

	// Hub and the notification loop back through it
	hub := websocket.NewHub()
	wsPort := adapter.NewWebSocketAdapter(hub)
	notificationService := serviceimpl.NewNotificationService(wsPort, userRepo)
	friendRequestService := serviceimpl.NewFriendRequestService(friendRequestRepo, friendshipRepo, userRepo, notificationService)
	hub.SetFriendRequestService(friendRequestService)
	hub.SetPresenceService(presenceService)

	// Handlers
	authMiddleware := middleware.NewAuthMiddleware(authService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	friendRequestHandler := handler.NewFriendRequestHandler(friendRequestService)
	conversationHandler := handler.NewConversationHandler(conversationService)
	presenceHandler := handler.NewPresenceHandler(presenceService)

	return &Container{
		UserRepo:          userRepo,
		FriendRequestRepo: friendRequestRepo,
		FriendshipRepo:    friendshipRepo,
		ConversationRepo:  conversationRepo,

		WebSocketHub:  hub,
		WebSocketPort: wsPort,

		AuthService:          authService,
		UserService:          userService,
		FriendRequestService: friendRequestService,
		ConversationService:  conversationService,
		NotificationService:  notificationService,
		PresenceService:      presenceService,

		AuthMiddleware:       authMiddleware,
		AuthHandler:          authHandler,
		UserHandler:          userHandler,
		FriendRequestHandler: friendRequestHandler,
		ConversationHandler:  conversationHandler,
		PresenceHandler:      presenceHandler,

		RedisClient: redisClient,
	}
}
