package lobby

import (
	"errors"

	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/KirkDiggler/mafiad/internal/random"
)

// ErrNotInRoom is returned when an id does not belong to any member
var ErrNotInRoom = errors.New("user not in room")

// Config holds the dependencies of a lobby room
type Config struct {
	// Random generates user ids
	Random random.Source
}

type member struct {
	user  models.User
	ready bool
}

// Room tracks membership and readiness before a game starts.
// Room is not safe for concurrent use; the owner serializes access.
type Room struct {
	random     random.Source
	members    map[uint64]*member
	order      []uint64
	readyCount int
}

// New creates an empty room
func New(cfg *Config) (*Room, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &Room{
		random:  cfg.Random,
		members: make(map[uint64]*member),
	}, nil
}

// Join adds a user with a fresh random id
func (r *Room) Join(nickname string) models.User {
	id := r.random.Uint64()
	for r.taken(id) {
		id = r.random.Uint64()
	}

	user := models.User{ID: id, Nickname: nickname}
	r.members[id] = &member{user: user}
	r.order = append(r.order, id)
	return user
}

// Leave removes a user, dropping their readiness
func (r *Room) Leave(id uint64) error {
	m, ok := r.members[id]
	if !ok {
		return ErrNotInRoom
	}

	if m.ready {
		r.readyCount--
	}
	delete(r.members, id)

	for i, uid := range r.order {
		if uid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Users returns a snapshot of the members in join order
func (r *Room) Users() []models.User {
	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.members[id].user)
	}
	return users
}

// taken reports whether id cannot be handed out. Zero is reserved.
func (r *Room) taken(id uint64) bool {
	_, ok := r.members[id]
	return ok || id == 0
}

// Has reports whether id is a member
func (r *Room) Has(id uint64) bool {
	_, ok := r.members[id]
	return ok
}

// Nickname returns the nickname of a member
func (r *Room) Nickname(id uint64) (string, error) {
	m, ok := r.members[id]
	if !ok {
		return "", ErrNotInRoom
	}
	return m.user.Nickname, nil
}

// Ready marks a member ready. It reports whether the flag changed.
func (r *Room) Ready(id uint64) (bool, error) {
	m, ok := r.members[id]
	if !ok {
		return false, ErrNotInRoom
	}

	if m.ready {
		return false, nil
	}
	m.ready = true
	r.readyCount++
	return true, nil
}

// CancelReady clears a member's ready flag. It reports whether the flag changed.
func (r *Room) CancelReady(id uint64) (bool, error) {
	m, ok := r.members[id]
	if !ok {
		return false, ErrNotInRoom
	}

	if !m.ready {
		return false, nil
	}
	m.ready = false
	r.readyCount--
	return true, nil
}

// IsReady reports whether a member is marked ready
func (r *Room) IsReady(id uint64) bool {
	m, ok := r.members[id]
	return ok && m.ready
}

// ReadyCount returns the number of ready members
func (r *Room) ReadyCount() int {
	return r.readyCount
}

// Size returns the number of members
func (r *Room) Size() int {
	return len(r.members)
}
