package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/dependencies/random"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage"
)

// Daily claim delta bounds, inclusive. These are compatibility constants:
// long-standing chats have score distributions shaped by them.
const (
	MinDelta = -5
	MaxDelta = 20
)

// Service owns all score mutation: the once-per-day claim state machine
// and the admin adjustment path.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
	locks   *lockTable
}

// New creates a new ledger service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
		locks:   newLockTable(),
	}
}

// Claim attempts the daily score claim for the (user, chat) key.
//
// The claim day is supplied by the caller, not read from a clock, and is
// compared for equality against the entry's stored day. The whole
// check-then-act sequence runs under the key's mutex, so concurrent
// same-day claims for one key produce exactly one acceptance.
func (s *Service) Claim(ctx context.Context, userID, chatID int64, today model.Day) (*model.ClaimResult, error) {
	unlock := s.locks.acquire(userID, chatID)
	defer unlock()

	entry, err := s.storage.GetEntry(ctx, userID, chatID)
	if errors.Is(err, model.ErrEntryNotFound) {
		entry = model.NewScoreEntry(userID, chatID)
		if err := s.storage.SaveEntry(ctx, entry); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if entry.LastClaim == today {
		return &model.ClaimResult{Accepted: false, Score: entry.Score}, nil
	}

	delta := int64(s.random.IntBetween(MinDelta, MaxDelta))
	entry.Score += delta
	entry.LastClaim = today

	if err := s.storage.SaveEntry(ctx, entry); err != nil {
		s.logger.Error("failed to save claim",
			slog.Int64("user_id", userID),
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("claim accepted",
		slog.Int64("user_id", userID),
		slog.Int64("chat_id", chatID),
		slog.Int64("delta", delta),
		slog.Int64("score", entry.Score),
	)

	return &model.ClaimResult{Accepted: true, Delta: delta, Score: entry.Score}, nil
}

// Adjust adds an arbitrary amount to the key's score, creating the entry
// if it does not exist. The last-claim day is never touched, so a same-day
// claim stays possible after an adjustment. Authorization is the caller's
// responsibility; this method must never be reachable from the public
// claim path.
func (s *Service) Adjust(ctx context.Context, userID, chatID, amount int64) (int64, error) {
	unlock := s.locks.acquire(userID, chatID)
	defer unlock()

	entry, err := s.storage.GetEntry(ctx, userID, chatID)
	if errors.Is(err, model.ErrEntryNotFound) {
		entry = model.NewScoreEntry(userID, chatID)
	} else if err != nil {
		return 0, err
	}

	entry.Score += amount

	if err := s.storage.SaveEntry(ctx, entry); err != nil {
		s.logger.Error("failed to save adjustment",
			slog.Int64("user_id", userID),
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		return 0, err
	}

	s.logger.Info("score adjusted",
		slog.Int64("user_id", userID),
		slog.Int64("chat_id", chatID),
		slog.Int64("amount", amount),
		slog.Int64("score", entry.Score),
	)

	return entry.Score, nil
}

// GetScore returns the key's current score, 0 for an entry that has never
// been created.
func (s *Service) GetScore(ctx context.Context, userID, chatID int64) (int64, error) {
	entry, err := s.storage.GetEntry(ctx, userID, chatID)
	if errors.Is(err, model.ErrEntryNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return entry.Score, nil
}
