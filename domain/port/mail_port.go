// domain/port/mail_port.go
package port

// Mailer delivers the templated account-lifecycle mails. Implementations
// report failure through the error; they never retry.
type Mailer interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
}
