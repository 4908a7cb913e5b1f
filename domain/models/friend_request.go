// domain/models/friend_request.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequest - a pending relationship request between two users. The record
// only exists while the request is pending: accepting replaces it with a
// Friendship pair and a Conversation inside one transaction, so there is no
// status column.
type FriendRequest struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SenderID    uuid.UUID `json:"sender_id" gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID `json:"recipient_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at"`

	// Associations
	Sender    *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Recipient *User `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
}

// TableName - table name in the database
func (FriendRequest) TableName() string {
	return "friend_requests"
}
