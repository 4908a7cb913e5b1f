// pkg/configs/mail.go
package configs

import (
	"fmt"
	"os"
	"strconv"
)

// MailConfig - SMTP settings plus the base URLs the mail links point at.
// APIBaseURL is this service (verification endpoint), AppBaseURL the frontend
// (password reset form).
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	APIBaseURL string
	AppBaseURL string
}

func LoadMailConfig() (*MailConfig, error) {
	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		port = parsed
	}

	return &MailConfig{
		Host:       envOr("SMTP_HOST", "localhost"),
		Port:       port,
		Username:   os.Getenv("SMTP_USER"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       envOr("MAIL_FROM", "no-reply@chatapp.local"),
		APIBaseURL: envOr("API_BASE_URL", "http://localhost:3000"),
		AppBaseURL: envOr("APP_BASE_URL", "http://localhost:5173"),
	}, nil
}
