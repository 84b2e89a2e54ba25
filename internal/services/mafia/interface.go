package mafia

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mafiad/internal/services/mafia Service

import "context"

// Service defines the interface for mafia room operations
type Service interface {
	// CreateRoom opens a new room and joins its creator
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player to a room that has not started yet
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// Subscribe returns a cursor over the room's notifications from the first one
	Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error)

	// LeaveRoom removes a player from a room and from its game
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// ReadyToStart blocks until the room is full and everyone is ready, then returns the caller's role
	ReadyToStart(ctx context.Context, input *ReadyToStartInput) (*ReadyToStartOutput, error)

	// Night blocks until every player has finished the night
	Night(ctx context.Context, input *NightInput) (*NightOutput, error)

	// Kill lets the mafia eliminate a player during the night
	Kill(ctx context.Context, input *KillInput) (*KillOutput, error)

	// IsKiller lets the officer check whether a player is mafia during the night
	IsKiller(ctx context.Context, input *IsKillerInput) (*IsKillerOutput, error)

	// Day casts a vote and blocks until every player has voted
	Day(ctx context.Context, input *DayInput) (*DayOutput, error)

	// GetRoom returns the public state of a room
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// GetGameResult returns the archived result of a finished game
	GetGameResult(ctx context.Context, input *GetGameResultInput) (*GetGameResultOutput, error)

	// ListGameResults returns the most recently finished games
	ListGameResults(ctx context.Context, input *ListGameResultsInput) (*ListGameResultsOutput, error)

	// Close releases every blocked caller with ErrShuttingDown
	Close()
}
