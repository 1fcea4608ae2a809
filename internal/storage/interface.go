package storage

import (
	"context"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations.
	//
	// SaveUser inserts the user only if no record with that id exists;
	// an existing record is left untouched (first-write-wins). Backends
	// must make the insert-if-absent check atomic.
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)

	// Score entry operations.
	//
	// SaveEntry upserts the full entry for its (user, chat) key. A single
	// call is atomic: readers observe either the previous or the new
	// entry, never a mix.
	SaveEntry(ctx context.Context, entry *model.ScoreEntry) error
	GetEntry(ctx context.Context, userID, chatID int64) (*model.ScoreEntry, error)
	EntriesForChat(ctx context.Context, chatID int64) ([]*model.ScoreEntry, error)
	AllEntries(ctx context.Context) ([]*model.ScoreEntry, error)
}
