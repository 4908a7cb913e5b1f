// pkg/app/app.go
package app

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saiyasanth/chatapp/interfaces/api/middleware"
	"github.com/saiyasanth/chatapp/interfaces/api/routes"
	"github.com/saiyasanth/chatapp/interfaces/websocket"
	"github.com/saiyasanth/chatapp/pkg/di"
)

// SetupApp builds the Fiber app with the full middleware chain, the REST
// routes and the WebSocket endpoint.
func SetupApp(container *di.Container) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		ExposeHeaders: "Content-Length,Content-Type",
		MaxAge:        86400,
	}))
	app.Use(compress.New())
	app.Use(middleware.Prometheus())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ChatApp API",
			"status":  "online",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/stats", func(c *fiber.Ctx) error {
		return c.JSON(container.WebSocketHub.GetStats())
	})

	routes.SetupRoutes(
		app,
		container.AuthMiddleware,
		container.AuthHandler,
		container.FriendRequestHandler,
		container.UserHandler,
		container.ConversationHandler,
		container.PresenceHandler,
	)

	websocket.RegisterWebSocketRoutes(app, container.WebSocketHub, container.AuthMiddleware.Protected())

	return app
}
