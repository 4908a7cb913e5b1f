// application/serviceimpl/friend_request_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/domain/repository"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/infrastructure/persistence/database"
	"github.com/saiyasanth/chatapp/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingNotifications captures fanout calls instead of hitting a hub.
type recordingNotifications struct {
	received []*models.FriendRequest
	accepted []*models.FriendRequest
}

func (n *recordingNotifications) NotifyFriendRequestReceived(request *models.FriendRequest) {
	n.received = append(n.received, request)
}

func (n *recordingNotifications) NotifyFriendRequestAccepted(request *models.FriendRequest, conversation *models.Conversation) {
	n.accepted = append(n.accepted, request)
}

type serviceFixture struct {
	db            *gorm.DB
	svc           service.FriendRequestService
	notifications *recordingNotifications
	userRepo      repository.UserRepository
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.SetupDatabase(db))

	userRepo := postgres.NewUserRepository(db)
	notifications := &recordingNotifications{}
	svc := NewFriendRequestService(
		postgres.NewFriendRequestRepository(db),
		postgres.NewFriendshipRepository(db),
		userRepo,
		notifications,
	)
	return &serviceFixture{db: db, svc: svc, notifications: notifications, userRepo: userRepo}
}

func (f *serviceFixture) createUser(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{
		Username:   gofakeit.Username() + uuid.NewString()[:8],
		Email:      uuid.NewString() + "@" + gofakeit.DomainName(),
		IsVerified: true,
	}
	require.NoError(t, f.userRepo.Create(user))
	return user
}

func TestSendRequest_CreatesRequestAndNotifies(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)

	request, err := f.svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, request.SenderID)
	assert.Equal(t, bob.ID, request.RecipientID)

	// One fanout call, the notification service itself addresses both parties.
	assert.Len(t, f.notifications.received, 1)
}

func TestSendRequest_UnknownRecipient(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)

	_, err := f.svc.SendRequest(alice.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	var count int64
	require.NoError(t, f.db.Model(&models.FriendRequest{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, f.notifications.received)
}

func TestSendRequest_Self(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)

	_, err := f.svc.SendRequest(alice.ID, alice.ID)
	assert.ErrorIs(t, err, service.ErrSelfRequest)
}

func TestSendRequest_Duplicate(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)

	_, err := f.svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = f.svc.SendRequest(alice.ID, bob.ID)
	assert.ErrorIs(t, err, service.ErrRequestAlreadyExists)

	// The reverse direction counts as the same pending pair.
	_, err = f.svc.SendRequest(bob.ID, alice.ID)
	assert.ErrorIs(t, err, service.ErrRequestAlreadyExists)

	var count int64
	require.NoError(t, f.db.Model(&models.FriendRequest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSendRequest_AlreadyFriends(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)

	request, err := f.svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = f.svc.AcceptRequest(request.ID)
	require.NoError(t, err)

	_, err = f.svc.SendRequest(alice.ID, bob.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyFriends)
	_, err = f.svc.SendRequest(bob.ID, alice.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyFriends)
}

func TestAcceptRequest_CreatesFriendshipAndConversation(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)

	request, err := f.svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	conversation, err := f.svc.AcceptRequest(request.ID)
	require.NoError(t, err)
	require.NotNil(t, conversation)
	assert.Len(t, f.notifications.accepted, 1)

	friends, err := f.svc.GetFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)

	friends, err = f.svc.GetFriends(bob.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, alice.ID, friends[0].ID)

	// The pending request is gone from both views.
	pending, err := f.svc.GetPendingRequests(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
	sent, err := f.svc.GetSentRequests(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestAcceptRequest_Unknown(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.AcceptRequest(uuid.New())
	assert.ErrorIs(t, err, service.ErrRequestNotFound)
	assert.Empty(t, f.notifications.accepted)
}

func TestAcceptRequest_Twice(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)

	request, err := f.svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = f.svc.AcceptRequest(request.ID)
	require.NoError(t, err)

	_, err = f.svc.AcceptRequest(request.ID)
	assert.ErrorIs(t, err, service.ErrRequestNotFound)

	// No duplicate state from the second attempt.
	var edgeCount int64
	require.NoError(t, f.db.Model(&models.Friendship{}).Count(&edgeCount).Error)
	assert.EqualValues(t, 2, edgeCount)
	var convCount int64
	require.NoError(t, f.db.Model(&models.Conversation{}).Count(&convCount).Error)
	assert.EqualValues(t, 1, convCount)
	assert.Len(t, f.notifications.accepted, 1)
}

func TestGetPendingAndSentRequests(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)
	carol := f.createUser(t)

	_, err := f.svc.SendRequest(alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = f.svc.SendRequest(bob.ID, carol.ID)
	require.NoError(t, err)

	pending, err := f.svc.GetPendingRequests(carol.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	sent, err := f.svc.GetSentRequests(alice.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, carol.ID, sent[0].RecipientID)
}
