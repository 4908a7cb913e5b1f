// application/serviceimpl/presence_service.go
package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/service"
)

const (
	onlineKeyPrefix   = "presence:online:"
	lastSeenKeyPrefix = "presence:last_seen:"

	// Online keys expire on their own so a crashed process cannot leave users
	// online forever.
	onlineTTL = 5 * time.Minute
)

type presenceService struct {
	redis *redis.Client
}

func NewPresenceService(redisClient *redis.Client) service.PresenceService {
	return &presenceService{redis: redisClient}
}

func (s *presenceService) SetUserOnline(userID uuid.UUID) error {
	ctx := context.Background()
	if err := s.redis.Set(ctx, onlineKeyPrefix+userID.String(), "1", onlineTTL).Err(); err != nil {
		return fmt.Errorf("set online: %w", err)
	}
	return nil
}

func (s *presenceService) SetUserOffline(userID uuid.UUID) error {
	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339)

	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, onlineKeyPrefix+userID.String())
	pipe.Set(ctx, lastSeenKeyPrefix+userID.String(), now, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set offline: %w", err)
	}
	return nil
}

func (s *presenceService) IsUserOnline(userID uuid.UUID) (bool, error) {
	ctx := context.Background()
	n, err := s.redis.Exists(ctx, onlineKeyPrefix+userID.String()).Result()
	if err != nil {
		return false, fmt.Errorf("check online: %w", err)
	}
	return n > 0, nil
}

func (s *presenceService) LastSeen(userID uuid.UUID) (*time.Time, error) {
	ctx := context.Background()
	val, err := s.redis.Get(ctx, lastSeenKeyPrefix+userID.String()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load last seen: %w", err)
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil, fmt.Errorf("parse last seen: %w", err)
	}
	return &t, nil
}
