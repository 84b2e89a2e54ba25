package game

import "github.com/KirkDiggler/mafiad/internal/models"

type SaveGameInput struct {
	Record *models.GameRecord
}

type GetGameInput struct {
	RoomID string
}

type ListRecentGamesInput struct {
	// Limit caps the number of records; zero means DefaultListLimit
	Limit int
}

type ListRecentGamesOutput struct {
	Records []*models.GameRecord
}
