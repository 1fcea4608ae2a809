package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetUser() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: 1, Name: "alice"}))

	user, err := s.storage.GetUser(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("alice", user.Name)
}

func (s *StorageSuite) TestSaveUserKeepsFirstName() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: 1, Name: "alice"}))
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: 1, Name: "renamed"}))

	user, err := s.storage.GetUser(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("alice", user.Name)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 99)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestSaveAndGetEntry() {
	entry := &model.ScoreEntry{UserID: 1, ChatID: 100, Score: 7, LastClaim: "2024-01-01"}
	s.Require().NoError(s.storage.SaveEntry(s.ctx, entry))

	got, err := s.storage.GetEntry(s.ctx, 1, 100)
	s.Require().NoError(err)
	s.Equal(entry, got)
}

func (s *StorageSuite) TestSaveEntryOverwrites() {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{UserID: 1, ChatID: 100, Score: 7}))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{UserID: 1, ChatID: 100, Score: 9, LastClaim: "2024-01-01"}))

	got, err := s.storage.GetEntry(s.ctx, 1, 100)
	s.Require().NoError(err)
	s.Equal(int64(9), got.Score)
	s.Equal(model.Day("2024-01-01"), got.LastClaim)
}

func (s *StorageSuite) TestGetEntryNotFound() {
	_, err := s.storage.GetEntry(s.ctx, 1, 100)
	s.ErrorIs(err, model.ErrEntryNotFound)
}

func (s *StorageSuite) TestEntriesForChat() {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{UserID: 1, ChatID: 100, Score: 1}))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{UserID: 2, ChatID: 100, Score: 2}))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{UserID: 1, ChatID: 200, Score: 3}))

	entries, err := s.storage.EntriesForChat(s.ctx, 100)
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *StorageSuite) TestAllEntries() {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{UserID: 1, ChatID: 100, Score: 1}))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{UserID: 1, ChatID: 200, Score: 3}))

	entries, err := s.storage.AllEntries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *StorageSuite) TestReturnedEntriesAreCopies() {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{UserID: 1, ChatID: 100, Score: 1}))

	got, err := s.storage.GetEntry(s.ctx, 1, 100)
	s.Require().NoError(err)
	got.Score = 999

	again, err := s.storage.GetEntry(s.ctx, 1, 100)
	s.Require().NoError(err)
	s.Equal(int64(1), again.Score)
}
