package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
)

// EventCacheRepository provides cached event rows using Redis. Only the
// event row itself is cached; reservation stats are viewer-specific and
// always read fresh.
type EventCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached events
}

// NewEventCacheRepository creates a new repository instance with the given TTL
func NewEventCacheRepository(client *redis.Client, expiration time.Duration) *EventCacheRepository {
	return &EventCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetByID fetches a cached event row. Returns an error on a cache miss.
func (r *EventCacheRepository) GetByID(ctx context.Context, eventID uuid.UUID) (*models.EventDB, error) {
	key := fmt.Sprintf("event:%s", eventID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("event %s not found in cache", eventID)
		}
		return nil, err
	}

	var event models.EventDB
	if err := json.Unmarshal([]byte(val), &event); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", event.EventID,
		"error", nil,
	)

	return &event, nil
}

// Set caches an event row in Redis with expiration
func (r *EventCacheRepository) Set(ctx context.Context, event *models.EventDB) error {
	key := fmt.Sprintf("event:%s", event.EventID)

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete evicts an event row from the cache. Called after updates and
// deletes so stale rows are never served.
func (r *EventCacheRepository) Delete(ctx context.Context, eventID uuid.UUID) error {
	key := fmt.Sprintf("event:%s", eventID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
