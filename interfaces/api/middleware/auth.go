// interfaces/api/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/dto"
	"github.com/saiyasanth/chatapp/domain/service"
)

type AuthMiddleware struct {
	authService service.AuthService
}

func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Protected resolves the session token from the Authorization header or the
// token cookie and stores the user id in locals. WebSocket upgrades also
// accept the token as a query parameter because browsers cannot set headers
// on the upgrade request.
func (m *AuthMiddleware) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "Missing authentication token",
			})
		}

		userID, err := m.authService.ParseSession(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "Invalid or expired session",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie := c.Cookies("token"); cookie != "" {
		return cookie
	}
	return c.Query("token")
}

// GetUserUUID reads the authenticated user id set by Protected.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return userID, nil
}
