package session

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/KirkDiggler/mafiad/internal/random"
)

// MinPlayers is the smallest table a game can be dealt for
const MinPlayers = 3

var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilRandom        = errors.New("random source cannot be nil")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrAlreadyDead      = errors.New("player already dead")
)

// Config holds the inputs needed to deal a new game
type Config struct {
	// Users is the lobby snapshot the game is dealt for
	Users []models.User

	// Random shuffles the role pool
	Random random.Source

	// MinPlayers overrides the minimum table size; values below 3 are ignored
	MinPlayers int
}

// Session is one game in progress. It is not safe for concurrent use.
type Session struct {
	players       map[uint64]*models.Player
	order         []uint64
	mafiaAlive    int
	civilianAlive int
}

// RolePool returns the unshuffled roles for n players: n/3 mafia, one officer,
// civilians for the rest
func RolePool(n int) []models.Role {
	mafia := n / 3
	pool := make([]models.Role, 0, n)
	pool = append(pool, models.RoleOfficer)
	for i := 0; i < n-mafia-1; i++ {
		pool = append(pool, models.RoleCivilian)
	}
	for i := 0; i < mafia; i++ {
		pool = append(pool, models.RoleMafia)
	}
	return pool
}

// New deals roles to every user and returns the running session
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	minPlayers := cfg.MinPlayers
	if minPlayers < MinPlayers {
		minPlayers = MinPlayers
	}

	n := len(cfg.Users)
	if n < minPlayers {
		return nil, fmt.Errorf("%w: need at least %d, have %d", ErrNotEnoughPlayers, minPlayers, n)
	}

	pool := RolePool(n)
	if len(pool) != n {
		panic(fmt.Sprintf("session: role pool has %d roles for %d players", len(pool), n))
	}
	cfg.Random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	s := &Session{
		players: make(map[uint64]*models.Player, n),
		order:   make([]uint64, 0, n),
	}
	for i, user := range cfg.Users {
		if _, dup := s.players[user.ID]; dup {
			panic(fmt.Sprintf("session: user %d dealt twice", user.ID))
		}

		s.players[user.ID] = &models.Player{
			User:   user,
			Role:   pool[i],
			Status: models.PlayerStatusAlive,
		}
		s.order = append(s.order, user.ID)

		if pool[i].IsMafia() {
			s.mafiaAlive++
		} else {
			s.civilianAlive++
		}
	}
	s.checkInvariants()

	return s, nil
}

func (s *Session) player(id uint64) (*models.Player, error) {
	p, ok := s.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	return p, nil
}

// Has reports whether id is still part of the session
func (s *Session) Has(id uint64) bool {
	_, ok := s.players[id]
	return ok
}

// IsMafia reports whether the player holds the mafia role
func (s *Session) IsMafia(id uint64) (bool, error) {
	p, err := s.player(id)
	if err != nil {
		return false, err
	}
	return p.Role == models.RoleMafia, nil
}

// IsOfficer reports whether the player holds the officer role
func (s *Session) IsOfficer(id uint64) (bool, error) {
	p, err := s.player(id)
	if err != nil {
		return false, err
	}
	return p.Role == models.RoleOfficer, nil
}

// IsKilled reports whether the player is dead
func (s *Session) IsKilled(id uint64) (bool, error) {
	p, err := s.player(id)
	if err != nil {
		return false, err
	}
	return !p.IsAlive(), nil
}

// RoleOf returns the role dealt to the player
func (s *Session) RoleOf(id uint64) (models.Role, error) {
	p, err := s.player(id)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}

// Player returns a copy of the player
func (s *Session) Player(id uint64) (models.Player, error) {
	p, err := s.player(id)
	if err != nil {
		return models.Player{}, err
	}
	return *p, nil
}

// Players returns copies of the remaining players in deal order
func (s *Session) Players() []models.Player {
	players := make([]models.Player, 0, len(s.order))
	for _, id := range s.order {
		players = append(players, *s.players[id])
	}
	return players
}

// IDs returns the ids of the remaining players in deal order
func (s *Session) IDs() []uint64 {
	return append([]uint64(nil), s.order...)
}

// MafiaAlive returns the number of living mafia
func (s *Session) MafiaAlive() int {
	return s.mafiaAlive
}

// CivilianAlive returns the number of living non-mafia players, officer included
func (s *Session) CivilianAlive() int {
	return s.civilianAlive
}

// Kill marks the player dead and evaluates the win condition.
// An empty Outcome means the game goes on.
func (s *Session) Kill(id uint64) (models.Outcome, error) {
	p, err := s.player(id)
	if err != nil {
		return "", err
	}

	if !p.IsAlive() {
		return "", fmt.Errorf("%w: %d", ErrAlreadyDead, id)
	}

	p.Status = models.PlayerStatusDead
	s.decrement(p.Role)
	s.checkInvariants()

	return s.Outcome(), nil
}

// Leave removes the player and evaluates the win condition
func (s *Session) Leave(id uint64) (models.Outcome, error) {
	p, err := s.player(id)
	if err != nil {
		return "", err
	}

	if p.IsAlive() {
		s.decrement(p.Role)
	}
	delete(s.players, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.checkInvariants()

	return s.Outcome(), nil
}

// Outcome evaluates the win condition
func (s *Session) Outcome() models.Outcome {
	if s.mafiaAlive == 0 {
		return models.OutcomeCiviliansWin
	}
	if s.civilianAlive <= s.mafiaAlive {
		return models.OutcomeMafiaWins
	}
	return ""
}

func (s *Session) decrement(role models.Role) {
	if role.IsMafia() {
		s.mafiaAlive--
	} else {
		s.civilianAlive--
	}
}

// checkInvariants panics when the counters drift from the roster
func (s *Session) checkInvariants() {
	if s.mafiaAlive < 0 || s.civilianAlive < 0 {
		panic(fmt.Sprintf("session: negative alive count mafia=%d civilian=%d", s.mafiaAlive, s.civilianAlive))
	}

	alive := 0
	for _, p := range s.players {
		if p.IsAlive() {
			alive++
		}
	}
	if alive != s.mafiaAlive+s.civilianAlive {
		panic(fmt.Sprintf("session: %d alive players but counters say mafia=%d civilian=%d", alive, s.mafiaAlive, s.civilianAlive))
	}
}
