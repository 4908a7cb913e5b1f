// domain/models/user.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// User - an account in the system. Live-connection handles are owned by the
// WebSocket hub and are never persisted here.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string     `json:"username" gorm:"type:varchar(50);not null;unique"`
	Email        string     `json:"email,omitempty" gorm:"type:varchar(255);not null;unique"`
	PasswordHash string     `json:"-" gorm:"type:text"`
	DisplayName  string     `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	IsVerified   bool       `json:"is_verified" gorm:"default:false"`
	CreatedAt    time.Time  `json:"created_at"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`

	// Associations
	SentRequests     []*FriendRequest `json:"sent_requests,omitempty" gorm:"foreignKey:SenderID"`
	ReceivedRequests []*FriendRequest `json:"received_requests,omitempty" gorm:"foreignKey:RecipientID"`
	Friendships      []*Friendship    `json:"friendships,omitempty" gorm:"foreignKey:UserID"`
}

// TableName - table name in the database
func (User) TableName() string {
	return "users"
}
