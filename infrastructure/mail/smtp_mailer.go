// infrastructure/mail/smtp_mailer.go
package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/saiyasanth/chatapp/domain/port"
	"github.com/saiyasanth/chatapp/pkg/configs"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var verificationTmpl = template.Must(template.New("verify").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Welcome to ChatApp</h2>
  <p>Click the button below to verify your account. The link is valid for 24 hours.</p>
  <p><a href="{{.Link}}" style="background:#4f46e5;color:#fff;padding:10px 20px;border-radius:4px;text-decoration:none;">Verify account</a></p>
  <p>If the button does not work, open this link:</p>
  <p><a href="{{.Link}}">{{.Link}}</a></p>
</div>`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Reset your password</h2>
  <p>Click the button below to choose a new password. The link is valid for one hour.</p>
  <p><a href="{{.Link}}" style="background:#4f46e5;color:#fff;padding:10px 20px;border-radius:4px;text-decoration:none;">Reset password</a></p>
  <p>If you did not request this, you can ignore this mail.</p>
</div>`))

type smtpMailer struct {
	dialer *gomail.Dialer
	config *configs.MailConfig
}

// NewSMTPMailer builds the gomail based mailer used for verification and
// password reset mails.
func NewSMTPMailer(config *configs.MailConfig) port.Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		config: config,
	}
}

func (m *smtpMailer) SendVerificationEmail(to, token string) error {
	link := m.config.APIBaseURL + "/auth/verify/" + token
	return m.send(to, "Verify your ChatApp account", verificationTmpl, link)
}

func (m *smtpMailer) SendPasswordResetEmail(to, token string) error {
	link := m.config.AppBaseURL + "/auth/resetpassword/" + token
	return m.send(to, "Reset your ChatApp password", resetTmpl, link)
}

func (m *smtpMailer) send(to, subject string, tmpl *template.Template, link string) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, struct{ Link string }{Link: link}); err != nil {
		return fmt.Errorf("render mail body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		logrus.WithError(err).WithField("to", to).Error("failed to send mail")
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
