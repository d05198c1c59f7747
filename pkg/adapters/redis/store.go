// Package redis provides a ProgressStore backed by Redis, for installations
// where course progress is shared across machines (e.g. a team study group
// pointing their CLIs at one instance).
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/lsobral/solid/pkg/domain"
)

// Store implements ports.ProgressStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for progress records.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for progress records.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "solid:progress:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(reader string) string {
	return s.prefix + reader
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the progress to Redis and registers the reader in the index.
func (s *Store) Save(ctx context.Context, reader string, progress *domain.Progress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	pipe := s.client.Pipeline()

	pipe.Set(ctx, s.key(reader), data, s.ttl)

	// Index score = expiration time, so List can lazily prune expired
	// readers with a single ZREMRANGEBYSCORE.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01, effectively "never"
	}

	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: reader,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Load retrieves the progress from Redis.
func (s *Store) Load(ctx context.Context, reader string) (*domain.Progress, error) {
	val, err := s.client.Get(ctx, s.key(reader)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var progress domain.Progress
	if err := json.Unmarshal([]byte(val), &progress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	return &progress, nil
}

// Delete removes the progress record and the index entry.
func (s *Store) Delete(ctx context.Context, reader string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(reader))
	pipe.ZRem(ctx, s.indexKey(), reader)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns the readers with saved progress, pruning expired entries from
// the index first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())

	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired readers: %w", err)
	}

	readers, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list readers: %w", err)
	}

	return readers, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
