// application/serviceimpl/auth_service_test.go
package serviceimpl

import (
	"errors"
	"testing"

	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/infrastructure/persistence/database"
	"github.com/saiyasanth/chatapp/infrastructure/persistence/postgres"
	"github.com/saiyasanth/chatapp/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeMailer records mails and optionally fails every delivery.
type fakeMailer struct {
	verifications []string
	resets        []string
	lastToken     string
	fail          bool
}

func (m *fakeMailer) SendVerificationEmail(to, token string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.verifications = append(m.verifications, to)
	m.lastToken = token
	return nil
}

func (m *fakeMailer) SendPasswordResetEmail(to, token string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.resets = append(m.resets, to)
	m.lastToken = token
	return nil
}

func newAuthFixture(t *testing.T) (service.AuthService, *fakeMailer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.SetupDatabase(db))

	mailer := &fakeMailer{}
	svc := NewAuthService(postgres.NewUserRepository(db), mailer, token.NewManager("test-secret"))
	return svc, mailer, db
}

func TestSignupVerifyLogin(t *testing.T) {
	svc, mailer, _ := newAuthFixture(t)

	user, err := svc.Signup("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)
	require.Len(t, mailer.verifications, 1)
	assert.False(t, user.IsVerified)

	// Login before verification resends the mail and fails.
	_, _, err = svc.Login("alice@example.com", "correct-horse")
	assert.ErrorIs(t, err, service.ErrAccountNotVerified)
	assert.Len(t, mailer.verifications, 2)

	verified, err := svc.VerifyAccount(mailer.lastToken)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	loggedIn, session, err := svc.Login("alice@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, session)

	parsed, err := svc.ParseSession(session)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Signup("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Signup("alice2", "alice@example.com", "correct-horse")
	assert.ErrorIs(t, err, service.ErrAccountExists)
}

func TestSignup_MailFailureRollsBackAccount(t *testing.T) {
	svc, mailer, _ := newAuthFixture(t)
	mailer.fail = true

	_, err := svc.Signup("alice", "alice@example.com", "correct-horse")
	assert.ErrorIs(t, err, service.ErrEmailDelivery)

	// The account was removed so the signup can be retried.
	mailer.fail = false
	_, err = svc.Signup("alice", "alice@example.com", "correct-horse")
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mailer, _ := newAuthFixture(t)

	_, err := svc.Signup("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)
	_, err = svc.VerifyAccount(mailer.lastToken)
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	_, _, err = svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestPasswordReset(t *testing.T) {
	svc, mailer, _ := newAuthFixture(t)

	_, err := svc.Signup("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)
	_, err = svc.VerifyAccount(mailer.lastToken)
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset("alice@example.com"))
	require.Len(t, mailer.resets, 1)

	require.NoError(t, svc.ResetPassword(mailer.lastToken, "new-password"))

	_, _, err = svc.Login("alice@example.com", "correct-horse")
	assert.ErrorIs(t, err, service.ErrWrongPassword)
	_, _, err = svc.Login("alice@example.com", "new-password")
	assert.NoError(t, err)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	err := svc.ResetPassword("not-a-token", "new-password")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenPurposeIsEnforced(t *testing.T) {
	svc, mailer, _ := newAuthFixture(t)

	_, err := svc.Signup("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)

	// A verification token is not a session.
	_, err = svc.ParseSession(mailer.lastToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
