// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/saiyasanth/chatapp/infrastructure/persistence/database"
	"github.com/saiyasanth/chatapp/pkg/app"
	"github.com/saiyasanth/chatapp/pkg/configs"
	"github.com/saiyasanth/chatapp/pkg/di"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_LEVEL") == "debug" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}

	db, err := configs.NewDatabase()
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer configs.CloseDatabase(db)

	if err := database.SetupDatabase(db); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	redisClient, err := configs.NewRedisClient()
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to redis")
	}
	defer redisClient.Close()

	mailConfig, err := configs.LoadMailConfig()
	if err != nil {
		logrus.WithError(err).Fatal("invalid mail configuration")
	}

	container := di.NewContainer(db, redisClient, mailConfig, jwtSecret)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go container.WebSocketHub.Run(ctx)

	fiberApp := app.SetupApp(container)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := fiberApp.Listen(":" + port); err != nil {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()
	logrus.WithField("port", port).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	cancel()
	if err := fiberApp.Shutdown(); err != nil {
		logrus.WithError(err).Error("shutdown error")
	}
}
