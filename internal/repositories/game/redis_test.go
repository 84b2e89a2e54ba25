package game

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) record(roomID string, finishedAt time.Time) *models.GameRecord {
	return &models.GameRecord{
		RoomID:  roomID,
		Outcome: models.OutcomeCiviliansWin,
		Days:    2,
		Players: []models.RecordedPlayer{
			{ID: 11, Nickname: "ann", Role: models.RoleMafia},
			{ID: 12, Nickname: "bob", Role: models.RoleOfficer, Alive: true},
			{ID: 13, Nickname: "cid", Role: models.RoleCivilian, Alive: true},
		},
		StartedAt:  finishedAt.Add(-10 * time.Minute),
		FinishedAt: finishedAt,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)

	_, err = NewRedis(&Config{RedisClient: s.client, TTL: -time.Second})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	ctx := context.Background()
	rec := s.record("room-1", s.testNow)

	err := s.repo.SaveGame(ctx, &SaveGameInput{Record: rec})
	s.Require().NoError(err)

	got, err := s.repo.GetGame(ctx, &GetGameInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal(rec.Outcome, got.Outcome)
	s.Equal(rec.Days, got.Days)
	s.Equal(rec.Players, got.Players)
	s.True(rec.FinishedAt.Equal(got.FinishedAt))

	// No expiry without a TTL
	s.Equal(time.Duration(0), s.mr.TTL(gameKey("room-1")))
}

func (s *RedisRepositoryTestSuite) TestSaveGameRejectsBadInput() {
	ctx := context.Background()

	s.Error(s.repo.SaveGame(ctx, nil))
	s.Error(s.repo.SaveGame(ctx, &SaveGameInput{}))
	s.Error(s.repo.SaveGame(ctx, &SaveGameInput{Record: &models.GameRecord{}}))
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{RoomID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetGameCorruptRecord() {
	s.Require().NoError(s.mr.Set(gameKey("room-bad"), "{not json"))

	_, err := s.repo.GetGame(context.Background(), &GetGameInput{RoomID: "room-bad"})
	s.Error(err)
	s.NotErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestListRecentGamesNewestFirst() {
	ctx := context.Background()
	for i, roomID := range []string{"room-a", "room-b", "room-c"} {
		rec := s.record(roomID, s.testNow.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.repo.SaveGame(ctx, &SaveGameInput{Record: rec}))
	}

	out, err := s.repo.ListRecentGames(ctx, &ListRecentGamesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Equal("room-c", out.Records[0].RoomID)
	s.Equal("room-b", out.Records[1].RoomID)

	out, err = s.repo.ListRecentGames(ctx, nil)
	s.Require().NoError(err)
	s.Len(out.Records, 3)
}

func (s *RedisRepositoryTestSuite) TestListRecentGamesEmpty() {
	out, err := s.repo.ListRecentGames(context.Background(), &ListRecentGamesInput{})
	s.Require().NoError(err)
	s.NotNil(out.Records)
	s.Empty(out.Records)
}

func (s *RedisRepositoryTestSuite) TestExpiredRecordsArePruned() {
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)

	ctx := context.Background()
	s.Require().NoError(repo.SaveGame(ctx, &SaveGameInput{Record: s.record("room-old", s.testNow)}))
	s.Equal(time.Hour, s.mr.TTL(gameKey("room-old")))

	s.mr.FastForward(2 * time.Hour)
	s.Require().NoError(repo.SaveGame(ctx, &SaveGameInput{Record: s.record("room-new", s.testNow.Add(time.Minute))}))

	out, err := repo.ListRecentGames(ctx, &ListRecentGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)
	s.Equal("room-new", out.Records[0].RoomID)

	members, err := s.mr.ZMembers(finishedGamesKey)
	s.Require().NoError(err)
	s.Equal([]string{"room-new"}, members)
}
