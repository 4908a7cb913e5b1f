// domain/models/conversation.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation - a one-to-one thread between exactly two users, materialized
// once when a friend request is accepted. The participant set is immutable.
type Conversation struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// Associations
	Participants []*ConversationParticipant `json:"participants,omitempty" gorm:"foreignKey:ConversationID"`
}

// TableName - table name in the database
func (Conversation) TableName() string {
	return "conversations"
}

// ConversationParticipant - membership of one user in a conversation.
type ConversationParticipant struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID `json:"conversation_id" gorm:"type:uuid;not null;uniqueIndex:idx_participants_conv_user"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_participants_conv_user"`
	JoinedAt       time.Time `json:"joined_at"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName - table name in the database
func (ConversationParticipant) TableName() string {
	return "conversation_participants"
}
