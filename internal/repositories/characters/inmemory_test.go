package characters_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/KirkDiggler/druid-summons/internal/repositories/characters"
	"github.com/KirkDiggler/druid-summons/internal/testutils"
	"github.com/stretchr/testify/suite"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo characters.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = characters.NewInMemoryRepository()
	s.ctx = context.Background()
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Success() {
	char := testutils.CreateTestDruid("char_123", 5)

	err := s.repo.Create(s.ctx, char)
	s.NoError(err)

	got, err := s.repo.Get(s.ctx, "char_123")
	s.Require().NoError(err)
	s.Equal("Test Druid", got.Name)
	s.Equal(5, got.Derived.SpellcasterLevel)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_DuplicateID() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestDruid("char_123", 1)))

	err := s.repo.Create(s.ctx, testutils.CreateTestDruid("char_123", 2))
	s.Error(err)
	s.True(dnderr.IsAlreadyExists(err))
	s.Equal("char_123", dnderr.GetMeta(err)["character_id"])
}

func (s *InMemoryRepositoryTestSuite) TestCreate_InvalidInput() {
	err := s.repo.Create(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))

	err = s.repo.Create(s.ctx, testutils.CreateTestDruid("", 1))
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_ReturnsCopy() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestDruid("char_123", 3)))

	got, err := s.repo.Get(s.ctx, "char_123")
	s.Require().NoError(err)
	got.Name = "Changed"
	got.AbilityScores[shared.AttributeWisdom] = 20
	got.Classes[0].Level = 20

	again, err := s.repo.Get(s.ctx, "char_123")
	s.Require().NoError(err)
	s.Equal("Test Druid", again.Name)
	s.Equal(10, again.AbilityScores[shared.AttributeWisdom])
	s.Equal(3, again.Classes[0].Level)
}

func (s *InMemoryRepositoryTestSuite) TestUpdate() {
	char := testutils.CreateTestDruid("char_123", 3)
	s.Require().NoError(s.repo.Create(s.ctx, char))

	char.Name = "Moonleaf"
	s.NoError(s.repo.Update(s.ctx, char))

	got, err := s.repo.Get(s.ctx, "char_123")
	s.Require().NoError(err)
	s.Equal("Moonleaf", got.Name)

	err = s.repo.Update(s.ctx, testutils.CreateTestDruid("missing", 1))
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestDruid("char_123", 1)))

	s.NoError(s.repo.Delete(s.ctx, "char_123"))

	_, err := s.repo.Get(s.ctx, "char_123")
	s.True(dnderr.IsNotFound(err))

	err = s.repo.Delete(s.ctx, "char_123")
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("char_%d", n)
			s.NoError(s.repo.Create(s.ctx, testutils.CreateTestDruid(id, 1)))
			_, err := s.repo.Get(s.ctx, id)
			s.NoError(err)
		}(i)
	}
	wg.Wait()
}
