// domain/service/auth_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
)

type AuthService interface {
	// Signup creates the account and sends a verification mail. If the mail
	// cannot be delivered the account is removed again and ErrEmailDelivery is
	// returned.
	Signup(username, email, password string) (*models.User, error)

	// Login verifies credentials and returns a signed session token. An
	// unverified account gets its verification mail resent and
	// ErrAccountNotVerified.
	Login(email, password string) (*models.User, string, error)

	VerifyAccount(token string) (*models.User, error)
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error

	// ParseSession resolves a session token back to a user id.
	ParseSession(token string) (uuid.UUID, error)
}
