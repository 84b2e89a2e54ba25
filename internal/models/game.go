package models

import (
	"time"
)

// Phase represents the stage a room is currently in
type Phase string

const (
	// PhaseLobby indicates the room is waiting for players to be ready
	PhaseLobby Phase = "lobby"

	// PhaseNight indicates mafia and officer are acting
	PhaseNight Phase = "night"

	// PhaseDay indicates players are voting
	PhaseDay Phase = "day"

	// PhaseFinished indicates the game ended or the room was closed
	PhaseFinished Phase = "finished"
)

// Outcome is the result string announced by the End notification
type Outcome string

const (
	OutcomeCiviliansWin Outcome = "Civilians win"
	OutcomeMafiaWins    Outcome = "Mafia wins"
	OutcomeRoomClosed   Outcome = "Room closed"
)

// GameRecord is the archived summary of a finished game
type GameRecord struct {
	// RoomID is the room the game was played in
	RoomID string `json:"room_id"`

	// Outcome is the announced result
	Outcome Outcome `json:"outcome"`

	// Days is the number of days that were started
	Days int `json:"days"`

	// Players holds every player dealt a role, including those who left
	Players []RecordedPlayer `json:"players"`

	// StartedAt is when roles were dealt
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the win condition fired
	FinishedAt time.Time `json:"finished_at"`
}

// RecordedPlayer is a player as seen at the end of a game
type RecordedPlayer struct {
	ID       uint64 `json:"id,string"`
	Nickname string `json:"nickname"`
	Role     Role   `json:"role"`
	Alive    bool   `json:"alive"`
	Left     bool   `json:"left"`
}
