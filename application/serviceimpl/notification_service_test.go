// application/serviceimpl/notification_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/dto"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fanoutCall struct {
	userID  uuid.UUID
	payload interface{}
}

// recordingPort captures broadcasts instead of delivering them.
type recordingPort struct {
	received []fanoutCall
	accepted []fanoutCall
}

func (p *recordingPort) BroadcastToUser(userID uuid.UUID, messageType string, data interface{}) {}

func (p *recordingPort) BroadcastFriendRequestReceived(userID uuid.UUID, payload interface{}) {
	p.received = append(p.received, fanoutCall{userID: userID, payload: payload})
}

func (p *recordingPort) BroadcastFriendRequestAccepted(userID uuid.UUID, payload interface{}) {
	p.accepted = append(p.accepted, fanoutCall{userID: userID, payload: payload})
}

func TestNotifyFriendRequestReceived_AddressesBothParties(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)

	port := &recordingPort{}
	svc := NewNotificationService(port, f.userRepo)

	svc.NotifyFriendRequestReceived(&models.FriendRequest{
		ID:          uuid.New(),
		SenderID:    alice.ID,
		RecipientID: bob.ID,
		Sender:      alice,
	})

	require.Len(t, port.received, 2)
	assert.Equal(t, alice.ID, port.received[0].userID)
	assert.Equal(t, bob.ID, port.received[1].userID)

	recipientPayload, ok := port.received[1].payload.(dto.EventPayload)
	require.True(t, ok)
	assert.Equal(t, dto.SeverityInfo, recipientPayload.Severity)
	assert.Contains(t, recipientPayload.Message, alice.Username)
}

func TestNotifyFriendRequestReceived_ResolvesSenderFromStore(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)

	port := &recordingPort{}
	svc := NewNotificationService(port, f.userRepo)

	// No preloaded sender on the request.
	svc.NotifyFriendRequestReceived(&models.FriendRequest{
		ID:          uuid.New(),
		SenderID:    alice.ID,
		RecipientID: bob.ID,
	})

	require.Len(t, port.received, 2)
	recipientPayload := port.received[1].payload.(dto.EventPayload)
	assert.Contains(t, recipientPayload.Message, alice.Username)
}

func TestNotifyFriendRequestAccepted_AddressesBothParties(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.createUser(t)
	bob := f.createUser(t)

	port := &recordingPort{}
	svc := NewNotificationService(port, f.userRepo)

	svc.NotifyFriendRequestAccepted(
		&models.FriendRequest{ID: uuid.New(), SenderID: alice.ID, RecipientID: bob.ID},
		&models.Conversation{ID: uuid.New()},
	)

	require.Len(t, port.accepted, 2)
	assert.Equal(t, alice.ID, port.accepted[0].userID)
	assert.Equal(t, bob.ID, port.accepted[1].userID)

	payload := port.accepted[0].payload.(dto.EventPayload)
	assert.Equal(t, dto.SeveritySuccess, payload.Severity)
}
