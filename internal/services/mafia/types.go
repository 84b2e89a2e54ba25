package mafia

import (
	"log/slog"

	"github.com/KirkDiggler/mafiad/internal/common/clock"
	"github.com/KirkDiggler/mafiad/internal/common/uuid"
	"github.com/KirkDiggler/mafiad/internal/metrics"
	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/KirkDiggler/mafiad/internal/notification"
	"github.com/KirkDiggler/mafiad/internal/random"
	gameRepo "github.com/KirkDiggler/mafiad/internal/repositories/game"
)

const (
	// DefaultCapacity is the number of players a room holds
	DefaultCapacity = 5

	// DefaultMinPlayers is the smallest capacity a room can be configured with
	DefaultMinPlayers = 3
)

// Config holds configuration for the mafia service
type Config struct {
	// GameRepo archives finished games
	GameRepo gameRepo.Repository

	// Clock stamps notifications and game records
	Clock clock.Clock

	// UUIDGenerator creates room ids
	UUIDGenerator uuid.Generator

	// Random deals roles and user ids
	Random random.Source

	// Metrics is optional; a private registry is used when nil
	Metrics *metrics.Metrics

	// Logger is optional; slog.Default() is used when nil
	Logger *slog.Logger

	// Capacity is the number of ready players that starts a game
	Capacity int

	// MinPlayers is the smallest game that can be dealt
	MinPlayers int
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	Nickname string
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	RoomID string
	UserID uint64
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	RoomID   string
	Nickname string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	UserID uint64
}

// SubscribeInput contains parameters for subscribing to a room's notifications
type SubscribeInput struct {
	RoomID string
	UserID uint64
}

// SubscribeOutput contains the cursor positioned at the first notification
type SubscribeOutput struct {
	Cursor *notification.Cursor
}

// LeaveRoomInput contains parameters for leaving a room
type LeaveRoomInput struct {
	RoomID string
	UserID uint64
}

// LeaveRoomOutput contains the result of leaving a room
type LeaveRoomOutput struct {
	// RoomClosed is true when the last member left
	RoomClosed bool
}

// ReadyToStartInput contains parameters for readying up
type ReadyToStartInput struct {
	RoomID string
	UserID uint64
}

// ReadyToStartOutput contains the role dealt to the caller
type ReadyToStartOutput struct {
	Role models.Role
}

// NightInput contains parameters for finishing the night
type NightInput struct {
	RoomID string
	UserID uint64
}

// NightOutput is returned once the night is over
type NightOutput struct{}

// KillInput contains parameters for a mafia kill
type KillInput struct {
	RoomID   string
	UserID   uint64
	TargetID uint64
}

// KillOutput contains the result of a kill
type KillOutput struct {
	// Outcome is set when the kill ended the game
	Outcome models.Outcome
}

// IsKillerInput contains parameters for an officer check
type IsKillerInput struct {
	RoomID   string
	UserID   uint64
	TargetID uint64
}

// IsKillerOutput contains the result of an officer check
type IsKillerOutput struct {
	IsKiller bool
}

// DayInput contains a vote. TargetID equal to UserID is a pass.
type DayInput struct {
	RoomID   string
	UserID   uint64
	TargetID uint64
}

// DayOutput contains the resolution of the day, identical for every voter
type DayOutput struct {
	Eliminated bool
}

// GetRoomInput contains parameters for reading a room
type GetRoomInput struct {
	RoomID string
}

// Member is the public view of a room member. Roles are never exposed.
type Member struct {
	ID       uint64
	Nickname string
	Ready    bool
	Alive    bool
}

// GetRoomOutput contains the public state of a room
type GetRoomOutput struct {
	RoomID   string
	Phase    models.Phase
	Day      int
	Capacity int
	Members  []Member
}

// GetGameResultInput contains parameters for reading an archived game
type GetGameResultInput struct {
	RoomID string
}

// GetGameResultOutput contains an archived game
type GetGameResultOutput struct {
	Record *models.GameRecord
}

// ListGameResultsInput contains parameters for listing archived games
type ListGameResultsInput struct {
	Limit int
}

// ListGameResultsOutput contains archived games, newest first
type ListGameResultsOutput struct {
	Records []*models.GameRecord
}
