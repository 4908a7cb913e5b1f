// infrastructure/persistence/postgres/friend_request_repository_test.go
package postgres

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/saiyasanth/chatapp/infrastructure/persistence/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.SetupDatabase(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Username:   gofakeit.Username() + uuid.NewString()[:8],
		Email:      uuid.NewString() + "@" + gofakeit.DomainName(),
		IsVerified: true,
	}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func TestFriendRequestRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	request := &models.FriendRequest{SenderID: alice.ID, RecipientID: bob.ID}
	require.NoError(t, repo.Create(request))
	assert.NotEqual(t, uuid.Nil, request.ID)

	found, err := repo.FindByID(request.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.SenderID)
	assert.Equal(t, bob.ID, found.RecipientID)
}

func TestFriendRequestRepository_FindPendingBetween(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	request := &models.FriendRequest{SenderID: alice.ID, RecipientID: bob.ID}
	require.NoError(t, repo.Create(request))

	// The lookup is direction agnostic.
	found, err := repo.FindPendingBetween(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, found.ID)

	found, err = repo.FindPendingBetween(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, found.ID)

	_, err = repo.FindPendingBetween(alice.ID, createTestUser(t, db).ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFriendRequestRepository_Accept(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	friendships := NewFriendshipRepository(db)
	conversations := NewConversationRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	request := &models.FriendRequest{SenderID: alice.ID, RecipientID: bob.ID}
	require.NoError(t, repo.Create(request))

	result, err := repo.Accept(request.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Conversation)

	// Request row is gone.
	_, err = repo.FindByID(request.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Both friendship edges exist.
	areFriends, err := friendships.AreFriends(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, areFriends)
	areFriends, err = friendships.AreFriends(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, areFriends)

	// The conversation has exactly the two participants.
	participantIDs, err := conversations.ParticipantIDs(result.Conversation.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{alice.ID, bob.ID}, participantIDs)
}

func TestFriendRequestRepository_AcceptTwice(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	request := &models.FriendRequest{SenderID: alice.ID, RecipientID: bob.ID}
	require.NoError(t, repo.Create(request))

	_, err := repo.Accept(request.ID)
	require.NoError(t, err)

	// Second accept of the same id fails and creates nothing new.
	_, err = repo.Accept(request.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var edgeCount int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&edgeCount).Error)
	assert.EqualValues(t, 2, edgeCount)

	var convCount int64
	require.NoError(t, db.Model(&models.Conversation{}).Count(&convCount).Error)
	assert.EqualValues(t, 1, convCount)
}

func TestFriendRequestRepository_AcceptUnknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)

	_, err := repo.Accept(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFriendRequestRepository_FindByRecipientAndSender(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	carol := createTestUser(t, db)

	require.NoError(t, repo.Create(&models.FriendRequest{SenderID: alice.ID, RecipientID: carol.ID}))
	require.NoError(t, repo.Create(&models.FriendRequest{SenderID: bob.ID, RecipientID: carol.ID}))

	pending, err := repo.FindByRecipient(carol.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	require.NotNil(t, pending[0].Sender)

	sent, err := repo.FindBySender(alice.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, carol.ID, sent[0].RecipientID)
}
