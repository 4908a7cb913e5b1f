// application/serviceimpl/auth_service.go
package serviceimpl

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/port"
	"github.com/saiyasanth/chatapp/domain/repository"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/pkg/token"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Token purposes and lifetimes.
const (
	purposeSession = "session"
	purposeVerify  = "verify"
	purposeReset   = "reset"

	sessionTTL = 15 * 24 * time.Hour
	verifyTTL  = 24 * time.Hour
	resetTTL   = time.Hour
)

type authService struct {
	userRepo repository.UserRepository
	mailer   port.Mailer
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, mailer port.Mailer, tokens *token.Manager) service.AuthService {
	return &authService{
		userRepo: userRepo,
		mailer:   mailer,
		tokens:   tokens,
	}
}

func (s *authService) Signup(username, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.userRepo.FindByEmail(email); err == nil && existing != nil {
		return nil, service.ErrAccountExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  username,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	if err := s.sendVerification(user); err != nil {
		// An account nobody can verify is useless, remove it so the signup can
		// be retried with the same email.
		if delErr := s.userRepo.Delete(user.ID); delErr != nil {
			logrus.WithError(delErr).WithField("user_id", user.ID).Error("failed to roll back unverifiable account")
		}
		return nil, service.ErrEmailDelivery
	}

	logrus.WithField("user_id", user.ID).Info("account created, verification mail sent")
	return user, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", service.ErrAccountNotFound
		}
		return nil, "", fmt.Errorf("load account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", service.ErrWrongPassword
	}

	if !user.IsVerified {
		if err := s.sendVerification(user); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to resend verification mail")
		}
		return nil, "", service.ErrAccountNotVerified
	}

	session, err := s.tokens.Sign(user.ID, purposeSession, sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign session: %w", err)
	}

	if err := s.userRepo.TouchLastActive(user.ID); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to touch last active")
	}

	return user, session, nil
}

func (s *authService) VerifyAccount(tokenString string) (*models.User, error) {
	userID, err := s.tokens.Parse(tokenString, purposeVerify)
	if err != nil {
		return nil, service.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrAccountNotFound
		}
		return nil, fmt.Errorf("load account: %w", err)
	}

	if !user.IsVerified {
		if err := s.userRepo.SetVerified(user.ID); err != nil {
			return nil, fmt.Errorf("mark verified: %w", err)
		}
		user.IsVerified = true
	}
	return user, nil
}

func (s *authService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrAccountNotFound
		}
		return fmt.Errorf("load account: %w", err)
	}

	reset, err := s.tokens.Sign(user.ID, purposeReset, resetTTL)
	if err != nil {
		return fmt.Errorf("sign reset token: %w", err)
	}
	if err := s.mailer.SendPasswordResetEmail(user.Email, reset); err != nil {
		return service.ErrEmailDelivery
	}
	return nil
}

func (s *authService) ResetPassword(tokenString, newPassword string) error {
	userID, err := s.tokens.Parse(tokenString, purposeReset)
	if err != nil {
		return service.ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *authService) ParseSession(tokenString string) (uuid.UUID, error) {
	userID, err := s.tokens.Parse(tokenString, purposeSession)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}
	return userID, nil
}

func (s *authService) sendVerification(user *models.User) error {
	verify, err := s.tokens.Sign(user.ID, purposeVerify, verifyTTL)
	if err != nil {
		return fmt.Errorf("sign verification token: %w", err)
	}
	return s.mailer.SendVerificationEmail(user.Email, verify)
}
