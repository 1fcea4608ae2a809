package identity

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage"
)

// Service records users as they are first seen
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new identity service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// EnsureUser registers the user if it has never been seen before. The name
// recorded on first sight is permanent; repeat calls with a different name
// are no-ops.
func (s *Service) EnsureUser(ctx context.Context, id int64, name string) error {
	if err := s.storage.SaveUser(ctx, &model.User{ID: id, Name: name}); err != nil {
		s.logger.Error("failed to save user",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Name returns the recorded display name for the user, or the empty string
// if the user is unknown or registered without a name.
func (s *Service) Name(ctx context.Context, id int64) (string, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.Name, nil
}
