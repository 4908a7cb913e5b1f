// database/migration.go
package database

import (
	"github.com/saiyasanth/chatapp/domain/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunMigration migrates all models. Order matters - parent tables first, then
// tables holding foreign keys into them.
func RunMigration(db *gorm.DB) error {
	logrus.Info("running auto migration")

	err := db.AutoMigrate(
		&models.User{},

		&models.FriendRequest{},
		&models.Friendship{},
		&models.Conversation{},

		&models.ConversationParticipant{},
	)
	if err != nil {
		logrus.WithError(err).Error("auto migration failed")
		return err
	}

	logrus.Info("auto migration done")
	return nil
}

// CreateIndices adds the indexes the hot queries depend on.
func CreateIndices(db *gorm.DB) error {
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_friend_requests_recipient_id ON friend_requests(recipient_id)",
		"CREATE INDEX IF NOT EXISTS idx_friend_requests_sender_id ON friend_requests(sender_id)",
		"CREATE INDEX IF NOT EXISTS idx_friendships_user_id ON friendships(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_participants_user_id ON conversation_participants(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)",
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// SetupDatabase runs migration and index creation.
func SetupDatabase(db *gorm.DB) error {
	if err := RunMigration(db); err != nil {
		return err
	}
	return CreateIndices(db)
}
