package models

// Role is the secret role dealt to a player when the game starts
type Role string

const (
	// RoleMafia kills one player per night
	RoleMafia Role = "Mafia"

	// RoleCivilian has no night action
	RoleCivilian Role = "Civilian"

	// RoleOfficer may check one player per night
	RoleOfficer Role = "Officer"
)

// IsMafia reports whether the role belongs to the mafia faction
func (r Role) IsMafia() bool {
	return r == RoleMafia
}

// PlayerStatus represents whether a player is still in play
type PlayerStatus string

const (
	// PlayerStatusAlive indicates the player can act and be voted for
	PlayerStatusAlive PlayerStatus = "Alive"

	// PlayerStatusDead indicates the player was killed or eliminated
	PlayerStatusDead PlayerStatus = "Dead"
)

// Player is a User taking part in a game session
type Player struct {
	User

	// Role is assigned once when the session is created
	Role Role

	// Status only ever moves from Alive to Dead
	Status PlayerStatus
}

// IsAlive reports whether the player is still alive
func (p *Player) IsAlive() bool {
	return p.Status == PlayerStatusAlive
}
