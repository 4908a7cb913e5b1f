// application/serviceimpl/conversation_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationService_ListsAcceptedThreads(t *testing.T) {
	f := newServiceFixture(t)
	svc := NewConversationService(postgres.NewConversationRepository(f.db))
	alice := f.createUser(t)
	bob := f.createUser(t)

	request, err := f.svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	created, err := f.svc.AcceptRequest(request.ID)
	require.NoError(t, err)

	// Both participants see the same thread.
	for _, userID := range []uuid.UUID{alice.ID, bob.ID} {
		conversations, err := svc.GetConversations(userID)
		require.NoError(t, err)
		require.Len(t, conversations, 1)
		assert.Equal(t, created.ID, conversations[0].ID)
	}

	conversations, err := svc.GetConversations(f.createUser(t).ID)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestConversationService_GetConversation_ParticipantsOnly(t *testing.T) {
	f := newServiceFixture(t)
	svc := NewConversationService(postgres.NewConversationRepository(f.db))
	alice := f.createUser(t)
	bob := f.createUser(t)
	carol := f.createUser(t)

	request, err := f.svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	created, err := f.svc.AcceptRequest(request.ID)
	require.NoError(t, err)

	conversation, err := svc.GetConversation(alice.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, conversation.ID)
	assert.Len(t, conversation.Participants, 2)

	// An outsider gets the same answer as for a missing id.
	_, err = svc.GetConversation(carol.ID, created.ID)
	assert.ErrorIs(t, err, service.ErrConversationNotFound)

	_, err = svc.GetConversation(alice.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrConversationNotFound)
}

func TestConversationService_GetConversationWith(t *testing.T) {
	f := newServiceFixture(t)
	svc := NewConversationService(postgres.NewConversationRepository(f.db))
	alice := f.createUser(t)
	bob := f.createUser(t)

	request, err := f.svc.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	created, err := f.svc.AcceptRequest(request.ID)
	require.NoError(t, err)

	conversation, err := svc.GetConversationWith(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, conversation.ID)

	_, err = svc.GetConversationWith(alice.ID, f.createUser(t).ID)
	assert.ErrorIs(t, err, service.ErrConversationNotFound)
}
