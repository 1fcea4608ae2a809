package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage/memory"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/testutil"
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
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestEnsureUserRegisters() {
	s.Require().NoError(s.service.EnsureUser(s.ctx, 1, "alice"))

	name, err := s.service.Name(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("alice", name)
}

func (s *ServiceSuite) TestFirstNameWins() {
	s.Require().NoError(s.service.EnsureUser(s.ctx, 1, "alice"))
	s.Require().NoError(s.service.EnsureUser(s.ctx, 1, "renamed"))

	name, err := s.service.Name(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("alice", name)
}

func (s *ServiceSuite) TestUnknownUserHasEmptyName() {
	name, err := s.service.Name(s.ctx, 99)
	s.Require().NoError(err)
	s.Equal("", name)
}
