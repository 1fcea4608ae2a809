package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// SetNX leaves an existing record untouched (first-write-wins)
	return s.client.SetNX(ctx, userKey(user.ID), data, 0).Err()
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Score entry operations

func (s *Storage) SaveEntry(ctx context.Context, entry *model.ScoreEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	eKey := entryKey(entry.UserID, entry.ChatID)

	// Use pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, eKey, data, 0)
	pipe.SAdd(ctx, chatIndexKey(entry.ChatID), eKey)
	pipe.SAdd(ctx, allEntriesIndexKey(), eKey)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetEntry(ctx context.Context, userID, chatID int64) (*model.ScoreEntry, error) {
	data, err := s.client.Get(ctx, entryKey(userID, chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrEntryNotFound
		}
		return nil, err
	}

	var entry model.ScoreEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Storage) EntriesForChat(ctx context.Context, chatID int64) ([]*model.ScoreEntry, error) {
	return s.entriesByIndex(ctx, chatIndexKey(chatID))
}

func (s *Storage) AllEntries(ctx context.Context) ([]*model.ScoreEntry, error) {
	return s.entriesByIndex(ctx, allEntriesIndexKey())
}

// entriesByIndex loads every entry whose key is a member of the index set.
// Entries deleted out from under the index are skipped rather than treated
// as errors.
func (s *Storage) entriesByIndex(ctx context.Context, indexKey string) ([]*model.ScoreEntry, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.ScoreEntry, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var entry model.ScoreEntry
		if err := json.Unmarshal([]byte(str), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}
