// domain/models/friendship.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Friendship - one direction of an accepted friendship edge. Every friendship
// is stored as two rows (A->B and B->A) written in the same transaction, which
// keeps the symmetry invariant inside the store instead of trusting callers.
type Friendship struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_friendships_user_friend"`
	FriendID  uuid.UUID `json:"friend_id" gorm:"type:uuid;not null;uniqueIndex:idx_friendships_user_friend"`
	CreatedAt time.Time `json:"created_at"`

	// Associations
	User   *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Friend *User `json:"friend,omitempty" gorm:"foreignKey:FriendID"`
}

// TableName - table name in the database
func (Friendship) TableName() string {
	return "friendships"
}
