// interfaces/api/handler/auth_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/saiyasanth/chatapp/domain/dto"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/sirupsen/logrus"
)

// verifiedPage is served after a successful mail verification so the link
// works in a plain browser tab.
const verifiedPage = `<!DOCTYPE html>
<html>
<head><title>Account verified</title></head>
<body style="font-family: sans-serif; text-align: center; margin-top: 10%;">
  <h1>Your account has been verified</h1>
  <p>You can close this tab and log in to ChatApp.</p>
</body>
</html>`

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates an account and sends the verification mail.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		return badRequest(c, "Username, email and a password of at least 8 characters are required")
	}

	user, err := h.authService.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountExists):
			return c.Status(fiber.StatusConflict).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "An account with this email already exists",
			})
		case errors.Is(err, service.ErrEmailDelivery):
			return c.Status(fiber.StatusBadGateway).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "Could not send verification email, please try again",
			})
		default:
			logrus.WithError(err).Error("signup failed")
			return internalError(c)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Severity: dto.SeveritySuccess,
		Message:  "Account created, check your inbox for the verification mail",
		UserID:   user.ID.String(),
	})
}

// Login verifies credentials and hands out a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, session, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "Account does not exist",
			})
		case errors.Is(err, service.ErrWrongPassword):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "Incorrect password",
			})
		case errors.Is(err, service.ErrAccountNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "Account not verified, a new verification mail has been sent",
			})
		default:
			logrus.WithError(err).Error("login failed")
			return internalError(c)
		}
	}

	return c.JSON(dto.AuthResponse{
		Severity: dto.SeveritySuccess,
		Message:  "Logged in",
		UserID:   user.ID.String(),
		Token:    session,
	})
}

// Verify consumes a verification link and answers with a small HTML page.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	if _, err := h.authService.VerifyAccount(c.Params("token")); err != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(fiber.StatusBadRequest).SendString("<h1>Invalid or expired verification link</h1>")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(verifiedPage)
}

// ForgotPassword sends a password reset mail.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "Account does not exist",
			})
		case errors.Is(err, service.ErrEmailDelivery):
			return c.Status(fiber.StatusBadGateway).JSON(dto.AuthResponse{
				Severity: dto.SeverityError,
				Message:  "Could not send reset email, please try again",
			})
		default:
			logrus.WithError(err).Error("password reset request failed")
			return internalError(c)
		}
	}

	return c.JSON(dto.AuthResponse{
		Severity: dto.SeveritySuccess,
		Message:  "Password reset mail sent",
	})
}

// ResetPassword consumes a reset token and sets the new password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(req.Password) < 8 {
		return badRequest(c, "Password must be at least 8 characters")
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return badRequest(c, "Invalid or expired reset link")
		}
		logrus.WithError(err).Error("password reset failed")
		return internalError(c)
	}

	return c.JSON(dto.AuthResponse{
		Severity: dto.SeveritySuccess,
		Message:  "Password updated, you can log in now",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.AuthResponse{
		Severity: dto.SeverityError,
		Message:  message,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.AuthResponse{
		Severity: dto.SeverityError,
		Message:  "Something went wrong",
	})
}
