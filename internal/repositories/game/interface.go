package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mafiad/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/mafiad/internal/models"
)

// Repository defines the interface for the finished game archive
type Repository interface {
	// SaveGame persists the record of a finished game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves the record of the game played in a room
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error)

	// ListRecentGames retrieves the most recently finished games, newest first
	ListRecentGames(ctx context.Context, input *ListRecentGamesInput) (*ListRecentGamesOutput, error)
}
