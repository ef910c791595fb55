// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/seasaltgame/seasalt/internal/config"
	"github.com/seasaltgame/seasalt/internal/engine"
)

// DefaultQueueName is the Redis list the engine pushes applied-action
// records onto; the archivist drains it.
const DefaultQueueName = "seasalt_actions"

// Queue publishes engine action records to a Redis list.
type Queue struct {
	Client *redis.Client
	Name   string
}

// ConnectRedis initializes the client from REDIS_ADDR / REDIS_DB /
// ACTION_QUEUE_NAME and pings it.
func ConnectRedis(ctx context.Context) (*Queue, error) {
	client := redis.NewClient(&redis.Options{
		Addr: config.Env("REDIS_ADDR", "localhost:6379"),
		DB:   config.EnvInt("REDIS_DB", 0),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Queue{
		Client: client,
		Name:   config.Env("ACTION_QUEUE_NAME", DefaultQueueName),
	}, nil
}

// Publish serializes the record and pushes it onto the queue.
func (q *Queue) Publish(ctx context.Context, rec engine.ActionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal action record: %w", err)
	}
	if err := q.Client.RPush(ctx, q.Name, data).Err(); err != nil {
		return fmt.Errorf("rpush to %q: %w", q.Name, err)
	}
	return nil
}

// PublishHook adapts Publish to the engine's fire-and-forget contract.
func (q *Queue) PublishHook(logger *logrus.Logger) func(engine.ActionRecord) {
	return func(rec engine.ActionRecord) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := q.Publish(ctx, rec); err != nil {
			logger.WithFields(logrus.Fields{"game_id": rec.GameID, "error": err}).Warn("publish action failed")
		}
	}
}

// Pop blocks up to timeout for the next queued record.
func (q *Queue) Pop(ctx context.Context, timeout time.Duration) (*engine.ActionRecord, error) {
	res, err := q.Client.BLPop(ctx, timeout, q.Name).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("blpop %q: %w", q.Name, err)
	}
	// BLPop returns [key, value].
	var rec engine.ActionRecord
	if err := json.Unmarshal([]byte(res[1]), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal action record: %w", err)
	}
	return &rec, nil
}
