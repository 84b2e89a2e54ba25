package lobby

import (
	"testing"

	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/KirkDiggler/mafiad/internal/random"
	"github.com/KirkDiggler/mafiad/internal/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *mocks.MockSource
	room       *Room
}

func (s *RoomTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = mocks.NewMockSource(s.mockCtrl)

	room, err := New(&Config{Random: s.mockRandom})
	s.Require().NoError(err)
	s.room = room
}

func (s *RoomTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomTestSuite(t *testing.T) {
	suite.Run(t, new(RoomTestSuite))
}

func (s *RoomTestSuite) TestNewRequiresRandom() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *RoomTestSuite) TestJoinRetriesOnCollision() {
	gomock.InOrder(
		s.mockRandom.EXPECT().Uint64().Return(uint64(7)),
		s.mockRandom.EXPECT().Uint64().Return(uint64(7)),
		s.mockRandom.EXPECT().Uint64().Return(uint64(0)),
		s.mockRandom.EXPECT().Uint64().Return(uint64(9)),
	)

	alice := s.room.Join("alice")
	bob := s.room.Join("bob")

	s.Equal(uint64(7), alice.ID)
	s.Equal(uint64(9), bob.ID)
	s.Equal([]models.User{alice, bob}, s.room.Users())
	s.Equal(2, s.room.Size())
}

func (s *RoomTestSuite) TestLeave() {
	s.mockRandom.EXPECT().Uint64().Return(uint64(1))
	s.mockRandom.EXPECT().Uint64().Return(uint64(2))
	s.room.Join("alice")
	s.room.Join("bob")

	s.Require().NoError(s.room.Leave(1))
	s.False(s.room.Has(1))
	s.Equal([]models.User{{ID: 2, Nickname: "bob"}}, s.room.Users())

	s.ErrorIs(s.room.Leave(1), ErrNotInRoom)
}

func (s *RoomTestSuite) TestNickname() {
	s.mockRandom.EXPECT().Uint64().Return(uint64(5))
	s.room.Join("carol")

	nickname, err := s.room.Nickname(5)
	s.Require().NoError(err)
	s.Equal("carol", nickname)

	_, err = s.room.Nickname(6)
	s.ErrorIs(err, ErrNotInRoom)
}

func (s *RoomTestSuite) TestReadyToggles() {
	s.mockRandom.EXPECT().Uint64().Return(uint64(1))
	s.mockRandom.EXPECT().Uint64().Return(uint64(2))
	s.room.Join("alice")
	s.room.Join("bob")

	changed, err := s.room.Ready(1)
	s.Require().NoError(err)
	s.True(changed)

	changed, err = s.room.Ready(1)
	s.Require().NoError(err)
	s.False(changed)
	s.Equal(1, s.room.ReadyCount())

	_, err = s.room.Ready(2)
	s.Require().NoError(err)
	s.Equal(2, s.room.ReadyCount())

	changed, err = s.room.CancelReady(2)
	s.Require().NoError(err)
	s.True(changed)
	s.False(s.room.IsReady(2))
	s.Equal(1, s.room.ReadyCount())

	// leaving drops the ready flag with the member
	s.Require().NoError(s.room.Leave(1))
	s.Equal(0, s.room.ReadyCount())

	_, err = s.room.Ready(1)
	s.ErrorIs(err, ErrNotInRoom)
	_, err = s.room.CancelReady(1)
	s.ErrorIs(err, ErrNotInRoom)
}

func TestJoinWithRealSource(t *testing.T) {
	room, err := New(&Config{Random: random.New(&random.Config{Seed: 1})})
	if err != nil {
		t.Fatal(err)
	}

	seen := map[uint64]bool{}
	for i := 0; i < 50; i++ {
		u := room.Join("p")
		if seen[u.ID] {
			t.Fatalf("duplicate id %d", u.ID)
		}
		seen[u.ID] = true
	}
}
