package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/model"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
}

func (s *ServiceSuite) addUser(id int64, name string) {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: id, Name: name}))
}

func (s *ServiceSuite) addEntry(userID, chatID, score int64) {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, &model.ScoreEntry{
		UserID: userID,
		ChatID: chatID,
		Score:  score,
	}))
}

// TopInChat tests

func (s *ServiceSuite) TestTopInChatOrdering() {
	s.addUser(1, "alice")
	s.addUser(2, "bob")
	s.addUser(3, "carol")
	s.addEntry(1, 100, 5)
	s.addEntry(2, 100, 30)
	s.addEntry(3, 100, 10)

	rows, err := s.service.TopInChat(s.ctx, 100, 10)
	s.Require().NoError(err)

	s.Require().Len(rows, 3)
	s.Equal(Row{UserID: 2, Name: "bob", Score: 30}, rows[0])
	s.Equal(Row{UserID: 3, Name: "carol", Score: 10}, rows[1])
	s.Equal(Row{UserID: 1, Name: "alice", Score: 5}, rows[2])
}

func (s *ServiceSuite) TestTopInChatTieBreaksByUserID() {
	s.addUser(7, "late")
	s.addUser(3, "early")
	s.addEntry(7, 100, 10)
	s.addEntry(3, 100, 10)

	rows, err := s.service.TopInChat(s.ctx, 100, 10)
	s.Require().NoError(err)

	s.Require().Len(rows, 2)
	s.Equal(int64(3), rows[0].UserID)
	s.Equal(int64(7), rows[1].UserID)
}

func (s *ServiceSuite) TestTopInChatTruncates() {
	for i := int64(1); i <= 15; i++ {
		s.addUser(i, "user")
		s.addEntry(i, 100, i)
	}

	rows, err := s.service.TopInChat(s.ctx, 100, 10)
	s.Require().NoError(err)

	s.Len(rows, 10)
	s.Equal(int64(15), rows[0].Score)
	s.Equal(int64(6), rows[9].Score)
}

func (s *ServiceSuite) TestTopInChatExcludesOtherChats() {
	s.addUser(1, "alice")
	s.addUser(2, "bob")
	s.addEntry(1, 100, 5)
	s.addEntry(2, 200, 50)

	rows, err := s.service.TopInChat(s.ctx, 100, 10)
	s.Require().NoError(err)

	s.Require().Len(rows, 1)
	s.Equal(int64(1), rows[0].UserID)
}

func (s *ServiceSuite) TestTopInChatPlaceholderNames() {
	// Unknown user and user registered without a name
	s.addUser(2, "")
	s.addEntry(1, 100, 5)
	s.addEntry(2, 100, 3)

	rows, err := s.service.TopInChat(s.ctx, 100, 10)
	s.Require().NoError(err)

	s.Require().Len(rows, 2)
	s.Equal(Placeholder, rows[0].Name)
	s.Equal(Placeholder, rows[1].Name)
}

func (s *ServiceSuite) TestTopInChatEmptyChat() {
	rows, err := s.service.TopInChat(s.ctx, 100, 10)
	s.Require().NoError(err)
	s.Empty(rows)
}

// TopGlobal tests

func (s *ServiceSuite) TestTopGlobalSumsAcrossChats() {
	s.addUser(1, "alice")
	s.addUser(2, "bob")
	s.addEntry(1, 100, 5)
	s.addEntry(1, 200, 20)
	s.addEntry(2, 100, 15)

	rows, err := s.service.TopGlobal(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().Len(rows, 2)
	s.Equal(Row{UserID: 1, Name: "alice", Score: 25}, rows[0])
	s.Equal(Row{UserID: 2, Name: "bob", Score: 15}, rows[1])
}

func (s *ServiceSuite) TestTopGlobalOneRowPerUser() {
	s.addUser(1, "alice")
	for chat := int64(100); chat < 110; chat++ {
		s.addEntry(1, chat, 1)
	}

	rows, err := s.service.TopGlobal(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().Len(rows, 1)
	s.Equal(int64(10), rows[0].Score)
}

func (s *ServiceSuite) TestTopGlobalNegativeTotals() {
	s.addUser(1, "alice")
	s.addUser(2, "bob")
	s.addEntry(1, 100, -5)
	s.addEntry(2, 100, -2)

	rows, err := s.service.TopGlobal(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().Len(rows, 2)
	s.Equal(int64(-2), rows[0].Score)
	s.Equal(int64(-5), rows[1].Score)
}

func (s *ServiceSuite) TestTopGlobalTruncates() {
	for i := int64(1); i <= 12; i++ {
		s.addUser(i, "user")
		s.addEntry(i, 100, i)
	}

	rows, err := s.service.TopGlobal(s.ctx, 5)
	s.Require().NoError(err)
	s.Len(rows, 5)
}
