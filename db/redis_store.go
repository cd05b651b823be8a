package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"groupform-server-go/config"
	"groupform-server-go/models"
)

const rosterKeyPrefix = "roster:" // String: roster:{id} -> JSON encoded roster

// RedisStore keeps rosters in Redis with a TTL.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
	logger *zap.Logger
}

var _ RosterStore = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. Entries expire after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		Client: client,
		TTL:    ttl,
		logger: logger,
	}
}

// Helper to generate roster key
func getRosterKey(id string) string {
	return rosterKeyPrefix + id
}

// Save stores the roster, replacing any roster with the same ID and resetting its TTL.
func (s *RedisStore) Save(ctx context.Context, roster models.Roster) error {
	if err := validateRoster(roster); err != nil {
		return err
	}
	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("failed to encode roster %s: %w", roster.ID, err)
	}
	if err := s.Client.Set(ctx, getRosterKey(roster.ID), data, s.TTL).Err(); err != nil {
		s.logger.Error("failed to save roster", zap.String("rosterId", roster.ID), zap.Error(err))
		return fmt.Errorf("failed to save roster to Redis: %w", err)
	}
	s.logger.Debug("saved roster",
		zap.String("rosterId", roster.ID),
		zap.Int("students", len(roster.Students)),
		zap.Duration("ttl", s.TTL))
	return nil
}

// Get retrieves a roster by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*models.Roster, error) {
	data, err := s.Client.Get(ctx, getRosterKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Not found or expired
		}
		s.logger.Error("failed to get roster", zap.String("rosterId", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get roster from Redis: %w", err)
	}

	var roster models.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to decode roster %s: %w", id, err)
	}
	return &roster, nil
}

// Delete removes a roster. Deleting a missing roster is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, getRosterKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete roster from Redis: %w", err)
	}
	return nil
}

// InitializeRedisClient creates a Redis client and pings it.
func InitializeRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}
