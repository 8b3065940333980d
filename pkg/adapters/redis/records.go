// Package redis implements the record accessor against a Redis backend.
// Records are stored as JSON snapshots, with a ZSET index for listing.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Store implements ports.RecordAccessor using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for cached records.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for records.
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
		prefix: "ageis:record:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(identity string) string {
	return s.prefix + identity
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists a record snapshot.
func (s *Store) Save(ctx context.Context, rec *domain.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(rec.ID), data, s.ttl)

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: rec.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Fetch implements ports.RecordAccessor.
func (s *Store) Fetch(ctx context.Context, identity string) (*domain.Record, error) {
	val, err := s.client.Get(ctx, s.key(identity)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var rec domain.Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &rec, nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, identity string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(identity))
	pipe.ZRem(ctx, s.indexKey(), identity)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns known identities, pruning expired index entries lazily.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())

	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired records: %w", err)
	}

	identities, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return identities, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
