package leaderboard

import (
	"context"
	"errors"
	"sort"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage"
)

// Placeholder shown for users registered without a display name
const Placeholder = "Anonim"

// Row is one ranked leaderboard line
type Row struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Score  int64  `json:"score"`
}

// Service provides read-only ranked views over the score ledger
type Service struct {
	storage storage.Storage
}

// New creates a new leaderboard service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// TopInChat returns up to n rows for the chat, highest score first.
// Equal scores order by ascending user id.
func (s *Service) TopInChat(ctx context.Context, chatID int64, n int) ([]Row, error) {
	entries, err := s.storage.EntriesForChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, Row{UserID: entry.UserID, Score: entry.Score})
	}

	return s.rank(ctx, rows, n)
}

// TopGlobal returns up to n rows ranking users by their score summed
// across every chat, highest total first. Equal totals order by ascending
// user id.
func (s *Service) TopGlobal(ctx context.Context, n int) ([]Row, error) {
	entries, err := s.storage.AllEntries(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]int64)
	for _, entry := range entries {
		totals[entry.UserID] += entry.Score
	}

	rows := make([]Row, 0, len(totals))
	for userID, total := range totals {
		rows = append(rows, Row{UserID: userID, Score: total})
	}

	return s.rank(ctx, rows, n)
}

// rank sorts, truncates and resolves display names. Name lookups happen
// only for the rows that survive truncation.
func (s *Service) rank(ctx context.Context, rows []Row, n int) ([]Row, error) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].UserID < rows[j].UserID
	})

	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}

	for i := range rows {
		name, err := s.displayName(ctx, rows[i].UserID)
		if err != nil {
			return nil, err
		}
		rows[i].Name = name
	}
	return rows, nil
}

// Unknown users and empty names render as the placeholder; only real
// storage failures propagate.
func (s *Service) displayName(ctx context.Context, userID int64) (string, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if errors.Is(err, model.ErrUserNotFound) {
		return Placeholder, nil
	}
	if err != nil {
		return "", err
	}
	if user.Name == "" {
		return Placeholder, nil
	}
	return user.Name, nil
}
