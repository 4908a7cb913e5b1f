// domain/dto/auth_dto.go
package dto

// SignupRequest - body of POST /auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest - body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest - body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest - body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// AuthResponse - the {severity, message} shape every auth endpoint answers
// with, optionally carrying the user id and session token on login.
type AuthResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	UserID   string `json:"_id,omitempty"`
	Token    string `json:"token,omitempty"`
}
