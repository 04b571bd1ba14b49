package presence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glamazon/config"
	"glamazon/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "presence:"

// PresenceService tracks which users are currently active. An entry expires
// on its own once the TTL lapses; there is no cleanup job.
type PresenceService interface {
	MarkOnline(userID string) error
	Touch(userID string) error
	IsOnline(userID string) (bool, error)
	OnlineUserIDs() ([]string, error)
	OnlineCount() (int64, error)
}

// RedisPresenceService implements PresenceService on a dedicated Redis DB
// using per-user keys with a sliding TTL.
type RedisPresenceService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPresenceService() *RedisPresenceService {
	ttl := time.Duration(config.AppConfig.PresenceTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisPresenceService{
		client: utils.GetPresenceCacheClient(),
		ttl:    ttl,
	}
}

func presenceKey(userID string) string {
	return keyPrefix + userID
}

// MarkOnline records activity for the user, resetting the expiry window.
func (s *RedisPresenceService) MarkOnline(userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.client.Set(ctx, presenceKey(userID), time.Now().Unix(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark user %s online: %w", userID, err)
	}
	return nil
}

// Touch is the heartbeat path; it behaves exactly like MarkOnline.
func (s *RedisPresenceService) Touch(userID string) error {
	return s.MarkOnline(userID)
}

// IsOnline reports whether the user has an unexpired presence entry.
func (s *RedisPresenceService) IsOnline(userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := s.client.Exists(ctx, presenceKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check presence for %s: %w", userID, err)
	}
	return n > 0, nil
}

// OnlineUserIDs scans the presence keyspace and returns the live user IDs.
func (s *RedisPresenceService) OnlineUserIDs() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var ids []string
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Error("Presence scan failed", zap.Error(err))
		return nil, fmt.Errorf("failed to scan presence keys: %w", err)
	}
	return ids, nil
}

// OnlineCount returns the number of currently online users.
func (s *RedisPresenceService) OnlineCount() (int64, error) {
	ids, err := s.OnlineUserIDs()
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
