package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/bot"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
)

// IntegrationSuite drives the full command stack over the mock clock,
// covering the day cycle end to end.
type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) claim(userID, chatID int64, name string) *bot.Reply {
	return s.app.Router.Dispatch(s.ctx, &bot.Message{
		UserID:  userID,
		ChatID:  chatID,
		Name:    name,
		Command: "farosat",
	})
}

func (s *IntegrationSuite) TestClaimDayCycle() {
	s.app.MockRandom.QueueIntBetween(12, -3)

	// Day one: claim lands, second attempt bounces
	first := s.claim(1, 100, "alice")
	s.Require().NotNil(first)
	s.Contains(first.Text, "+12 gram")

	repeat := s.claim(1, 100, "alice")
	s.Require().NotNil(repeat)
	s.NotContains(repeat.Text, "gram</b>")

	// One minute before local midnight is still the same day
	s.app.MockClock.Set(time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC))
	stillSameDay := s.claim(1, 100, "alice")
	s.Require().NotNil(stillSameDay)
	s.Equal(repeat.Text, stillSameDay.Text)

	// Past midnight the claim opens again
	s.app.MockClock.Set(time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC))
	nextDay := s.claim(1, 100, "alice")
	s.Require().NotNil(nextDay)
	s.Contains(nextDay.Text, "-3 gram")

	entry, err := s.app.Storage.GetEntry(s.ctx, 1, 100)
	s.Require().NoError(err)
	s.Equal(int64(9), entry.Score)
	s.Equal(model.Day("2024-01-02"), entry.LastClaim)
}

func (s *IntegrationSuite) TestSameDayDifferentChats() {
	s.app.MockRandom.QueueIntBetween(5, 8)

	s.claim(1, 100, "alice")
	other := s.claim(1, 200, "alice")
	s.Require().NotNil(other)
	s.Contains(other.Text, "+8 gram")
}

func (s *IntegrationSuite) TestAdminAdjustThenLeaderboards() {
	adjust := s.app.Router.Dispatch(s.ctx, &bot.Message{
		UserID:  TestAdminID,
		ChatID:  100,
		Command: "add_farosat",
		Args:    "7 50",
	})
	s.Require().NotNil(adjust)
	s.Contains(adjust.Text, "50")

	top := s.app.Router.Dispatch(s.ctx, &bot.Message{UserID: 1, ChatID: 100, Command: "top10"})
	s.Require().NotNil(top)
	s.Contains(top.Text, "50 gram")

	world := s.app.Router.Dispatch(s.ctx, &bot.Message{UserID: 1, ChatID: 100, Command: "worldtop10"})
	s.Require().NotNil(world)
	s.Contains(world.Text, "50 gram")
}

func (s *IntegrationSuite) TestNonAdminCannotAdjust() {
	reply := s.app.Router.Dispatch(s.ctx, &bot.Message{
		UserID:  TestAdminID + 1,
		ChatID:  100,
		Command: "add_farosat",
		Args:    "7 50",
	})
	s.Require().NotNil(reply)

	_, err := s.app.Storage.GetEntry(s.ctx, 7, 100)
	s.ErrorIs(err, model.ErrEntryNotFound)
}

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{AdminID: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Close()

	if app.Storage == nil || app.Router == nil {
		t.Fatal("expected fully wired app")
	}
}

func TestNewSQLiteRequiresPath(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeSQLite})
	if err == nil {
		t.Fatal("expected error for missing SQLitePath")
	}
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	if err == nil {
		t.Fatal("expected error for missing RedisConfig")
	}
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "cassette-tape"})
	if err == nil {
		t.Fatal("expected error for unknown storage type")
	}
}
