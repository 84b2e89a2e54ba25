package mafia

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound       GameError = "room not found"
	ErrRoomFull           GameError = "room is full"
	ErrNotEnoughPlayers   GameError = "not enough players"
	ErrGameAlreadyStarted GameError = "game already started"
	ErrGameNotStarted     GameError = "game not started"
	ErrPlayerNotFound     GameError = "player not found"
	ErrAlreadyDead        GameError = "player already dead"
	ErrNotAuthorizedRole  GameError = "role not authorized for this action"
	ErrAmbiguousState     GameError = "ambiguous game state"
	ErrWrongPhase         GameError = "action not allowed in this phase"
	ErrAlreadyActed       GameError = "player already acted this phase"
	ErrGameFinished       GameError = "game finished"
	ErrShuttingDown       GameError = "server shutting down"
	ErrGameResultNotFound GameError = "game result not found"
	ErrInvalidInput       GameError = "invalid input"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
	ErrNilRandom          GameError = "random source cannot be nil"
	ErrInvalidCapacity    GameError = "room capacity must be between the minimum players and 5"
)
