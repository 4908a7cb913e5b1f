// domain/service/presence_service.go
package service

import (
	"time"

	"github.com/google/uuid"
)

// PresenceService tracks coarse online state in Redis. It complements the
// hub's in-process connection registry with state the REST surface can query.
type PresenceService interface {
	SetUserOnline(userID uuid.UUID) error
	SetUserOffline(userID uuid.UUID) error
	IsUserOnline(userID uuid.UUID) (bool, error)
	LastSeen(userID uuid.UUID) (*time.Time, error)
}
