// File: services/intelligence/historyStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"quickcowork/models"
)

const chatHistoryPrefix = "chat:history:"

// RedisHistoryStore keeps per-user chat transcripts in a Redis list,
// newest at the head, trimmed to a fixed length.
type RedisHistoryStore struct {
	client *redis.Client
	limit  int64
	ttl    time.Duration
}

func NewRedisHistoryStore(client *redis.Client, limit int64, ttl time.Duration) *RedisHistoryStore {
	return &RedisHistoryStore{client: client, limit: limit, ttl: ttl}
}

func (s *RedisHistoryStore) Append(ctx context.Context, userID, sender, text string) error {
	msg := models.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now(),
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	key := chatHistoryPrefix + userID
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, b)
	pipe.LTrim(ctx, key, 0, s.limit-1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to count messages in chronological order.
func (s *RedisHistoryStore) Recent(ctx context.Context, userID string, count int64) ([]models.ChatMessage, error) {
	if count <= 0 || count > s.limit {
		count = s.limit
	}
	raw, err := s.client.LRange(ctx, chatHistoryPrefix+userID, 0, count-1).Result()
	if err != nil {
		return nil, err
	}
	msgs := make([]models.ChatMessage, 0, len(raw))
	// LRange returns newest first; reverse into chronological order.
	for i := len(raw) - 1; i >= 0; i-- {
		var m models.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &m); err != nil {
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
