package sqlite

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id INTEGER PRIMARY KEY,
	username TEXT
);

CREATE TABLE IF NOT EXISTS farosat_log (
	user_id INTEGER,
	chat_id INTEGER,
	farosat INTEGER DEFAULT 0,
	last_farosat_date TEXT,
	PRIMARY KEY (user_id, chat_id)
);
`

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (creating if needed) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral database.
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent claims.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	// INSERT OR IGNORE keeps the first recorded name
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (user_id, username) VALUES (?, ?)`,
		user.ID, user.Name,
	)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT username FROM users WHERE user_id = ?`, id,
	).Scan(&user.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Score entry operations

func (s *Storage) SaveEntry(ctx context.Context, entry *model.ScoreEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO farosat_log (user_id, chat_id, farosat, last_farosat_date)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, chat_id) DO UPDATE SET
		   farosat = excluded.farosat,
		   last_farosat_date = excluded.last_farosat_date`,
		entry.UserID, entry.ChatID, entry.Score, dayToNull(entry.LastClaim),
	)
	return err
}

func (s *Storage) GetEntry(ctx context.Context, userID, chatID int64) (*model.ScoreEntry, error) {
	entry := &model.ScoreEntry{UserID: userID, ChatID: chatID}
	var lastClaim sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT farosat, last_farosat_date FROM farosat_log
		 WHERE user_id = ? AND chat_id = ?`,
		userID, chatID,
	).Scan(&entry.Score, &lastClaim)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	entry.LastClaim = dayFromNull(lastClaim)
	return entry, nil
}

func (s *Storage) EntriesForChat(ctx context.Context, chatID int64) ([]*model.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, chat_id, farosat, last_farosat_date
		 FROM farosat_log WHERE chat_id = ?`, chatID,
	)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func (s *Storage) AllEntries(ctx context.Context) ([]*model.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, chat_id, farosat, last_farosat_date FROM farosat_log`,
	)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*model.ScoreEntry, error) {
	defer rows.Close()

	var entries []*model.ScoreEntry
	for rows.Next() {
		entry := &model.ScoreEntry{}
		var lastClaim sql.NullString
		if err := rows.Scan(&entry.UserID, &entry.ChatID, &entry.Score, &lastClaim); err != nil {
			return nil, err
		}
		entry.LastClaim = dayFromNull(lastClaim)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// A never-claimed entry stores NULL, matching the historical schema
func dayToNull(d model.Day) sql.NullString {
	if d == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(d), Valid: true}
}

func dayFromNull(ns sql.NullString) model.Day {
	if !ns.Valid {
		return ""
	}
	return model.Day(ns.String)
}
