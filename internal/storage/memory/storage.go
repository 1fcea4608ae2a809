package memory

import (
	"context"
	"sync"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users   map[int64]*model.User
	entries map[entryKey]*model.ScoreEntry
}

type entryKey struct {
	userID int64
	chatID int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:   make(map[int64]*model.User),
		entries: make(map[entryKey]*model.ScoreEntry),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; ok {
		return nil
	}
	u := *user
	s.users[user.ID] = &u
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// Score entry operations

func (s *Storage) SaveEntry(ctx context.Context, entry *model.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *entry
	s.entries[entryKey{userID: entry.UserID, chatID: entry.ChatID}] = &e
	return nil
}

func (s *Storage) GetEntry(ctx context.Context, userID, chatID int64) (*model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[entryKey{userID: userID, chatID: chatID}]
	if !ok {
		return nil, model.ErrEntryNotFound
	}
	e := *entry
	return &e, nil
}

func (s *Storage) EntriesForChat(ctx context.Context, chatID int64) ([]*model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []*model.ScoreEntry
	for key, entry := range s.entries {
		if key.chatID == chatID {
			e := *entry
			entries = append(entries, &e)
		}
	}
	return entries, nil
}

func (s *Storage) AllEntries(ctx context.Context) ([]*model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*model.ScoreEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		e := *entry
		entries = append(entries, &e)
	}
	return entries, nil
}
