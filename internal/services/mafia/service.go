package mafia

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/KirkDiggler/mafiad/internal/common/clock"
	"github.com/KirkDiggler/mafiad/internal/common/uuid"
	"github.com/KirkDiggler/mafiad/internal/metrics"
	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/KirkDiggler/mafiad/internal/random"
	gameRepo "github.com/KirkDiggler/mafiad/internal/repositories/game"
	"github.com/prometheus/client_golang/prometheus"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.Generator
	random        random.Source
	metrics       *metrics.Metrics
	logger        *slog.Logger
	capacity      int
	minPlayers    int

	rooms   *registry
	closing atomic.Bool
}

// New creates a new mafia service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	minPlayers := cfg.MinPlayers
	if minPlayers == 0 {
		minPlayers = DefaultMinPlayers
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	if minPlayers < DefaultMinPlayers || capacity < minPlayers || capacity > DefaultCapacity {
		return nil, ErrInvalidCapacity
	}

	m := cfg.Metrics
	if m == nil {
		var err error
		if m, err = metrics.New(prometheus.NewRegistry()); err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		random:        cfg.Random,
		metrics:       m,
		logger:        logger,
		capacity:      capacity,
		minPlayers:    minPlayers,
		rooms:         newRegistry(),
	}, nil
}

// withRoom runs fn under the room lock and archives a game the call finished
func (s *service) withRoom(ctx context.Context, roomID string, fn func(r *room) error) error {
	if s.closing.Load() {
		return ErrShuttingDown
	}

	r, ok := s.rooms.lookup(roomID)
	if !ok {
		return ErrRoomNotFound
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrRoomNotFound
	}
	err := fn(r)
	record := r.pending
	r.pending = nil
	r.mu.Unlock()

	if record != nil {
		s.archive(ctx, record)
	}
	return err
}

func (s *service) archive(ctx context.Context, record *models.GameRecord) {
	// the game is over whether or not the caller is still connected
	ctx = context.WithoutCancel(ctx)

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Record: record}); err != nil {
		s.logger.Error("game.archive", "room_id", record.RoomID, "err", err)
	}
}

func (s *service) removeRoom(r *room) {
	s.rooms.remove(r.id)
	s.metrics.RoomRemoved()
}

// CreateRoom opens a new room and joins its creator
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || input.Nickname == "" {
		return nil, ErrInvalidInput
	}

	if s.closing.Load() {
		return nil, ErrShuttingDown
	}

	var user models.User
	r, err := s.rooms.add(s.uuidGenerator, func(id string) (*room, error) {
		nr, err := newRoom(&roomConfig{
			id:         id,
			capacity:   s.capacity,
			minPlayers: s.minPlayers,
			random:     s.random.Fork(),
			clock:      s.clock,
			metrics:    s.metrics,
			logger:     s.logger,
			onRemove:   s.removeRoom,
		})
		if err != nil {
			return nil, err
		}

		nr.mu.Lock()
		defer nr.mu.Unlock()
		if user, err = nr.join(input.Nickname); err != nil {
			return nil, err
		}
		return nr, nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RoomCreated()
	r.logger.Info("room.created", "capacity", s.capacity)

	return &CreateRoomOutput{
		RoomID: r.id,
		UserID: user.ID,
	}, nil
}

// JoinRoom adds a player to a room that has not started yet
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil || input.Nickname == "" {
		return nil, ErrInvalidInput
	}

	var user models.User
	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		var err error
		user, err = r.join(input.Nickname)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &JoinRoomOutput{
		UserID: user.ID,
	}, nil
}

// Subscribe returns a cursor over the room's notifications from the first one
func (s *service) Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var out SubscribeOutput
	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		if !r.lobby.Has(input.UserID) {
			return ErrPlayerNotFound
		}
		out.Cursor = r.log.Subscribe()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// LeaveRoom removes a player from a room and from its game
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var out LeaveRoomOutput
	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		closed, err := r.leave(input.UserID)
		out.RoomClosed = closed
		return err
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// ReadyToStart blocks until the room is full and everyone is ready
func (s *service) ReadyToStart(ctx context.Context, input *ReadyToStartInput) (*ReadyToStartOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var out ReadyToStartOutput
	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		role, err := r.readyUp(ctx, input.UserID)
		out.Role = role
		return err
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Night blocks until every player has finished the night
func (s *service) Night(ctx context.Context, input *NightInput) (*NightOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		return r.passNight(ctx, input.UserID)
	})
	if err != nil {
		return nil, err
	}

	return &NightOutput{}, nil
}

// Kill lets the mafia eliminate a player during the night
func (s *service) Kill(ctx context.Context, input *KillInput) (*KillOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var out KillOutput
	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		outcome, err := r.kill(input.UserID, input.TargetID)
		out.Outcome = outcome
		return err
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// IsKiller lets the officer check whether a player is mafia during the night
func (s *service) IsKiller(ctx context.Context, input *IsKillerInput) (*IsKillerOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var out IsKillerOutput
	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		isKiller, err := r.check(input.UserID, input.TargetID)
		out.IsKiller = isKiller
		return err
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Day casts a vote and blocks until every player has voted
func (s *service) Day(ctx context.Context, input *DayInput) (*DayOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var out DayOutput
	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		eliminated, err := r.castVote(ctx, input.UserID, input.TargetID)
		out.Eliminated = eliminated
		return err
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// GetRoom returns the public state of a room
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var out *GetRoomOutput
	err := s.withRoom(ctx, input.RoomID, func(r *room) error {
		out = r.view()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// GetGameResult returns the archived result of a finished game
func (s *service) GetGameResult(ctx context.Context, input *GetGameResultInput) (*GetGameResultOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrInvalidInput
	}

	record, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameResultNotFound
		}
		return nil, err
	}

	return &GetGameResultOutput{
		Record: record,
	}, nil
}

// ListGameResults returns the most recently finished games
func (s *service) ListGameResults(ctx context.Context, input *ListGameResultsInput) (*ListGameResultsOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	if limit < 0 {
		return nil, ErrInvalidInput
	}

	out, err := s.gameRepo.ListRecentGames(ctx, &gameRepo.ListRecentGamesInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListGameResultsOutput{
		Records: out.Records,
	}, nil
}

// Close releases every blocked caller with ErrShuttingDown and ends every room
func (s *service) Close() {
	if s.closing.Swap(true) {
		return
	}

	// rooms created after this point are refused by the registry itself
	for _, r := range s.rooms.close() {
		r.mu.Lock()
		r.shutdown()
		r.mu.Unlock()
	}
	s.logger.Info("service.closed")
}
