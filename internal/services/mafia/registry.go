package mafia

import (
	"sync"

	"github.com/KirkDiggler/mafiad/internal/common/uuid"
)

// registry holds the live rooms. Lookups and removals of different rooms never
// contend; only id reservation and shutdown are serialized by reserve.
type registry struct {
	reserve sync.Mutex
	closed  bool

	rooms sync.Map
}

func newRegistry() *registry {
	return &registry{}
}

// add stores the room built for a fresh id, regenerating ids that are taken.
// Once the registry is closed no room is added.
func (g *registry) add(ids uuid.Generator, build func(id string) (*room, error)) (*room, error) {
	g.reserve.Lock()
	defer g.reserve.Unlock()

	if g.closed {
		return nil, ErrShuttingDown
	}

	id := ids.NewID()
	for g.has(id) {
		id = ids.NewID()
	}

	r, err := build(id)
	if err != nil {
		return nil, err
	}
	g.rooms.Store(id, r)
	return r, nil
}

func (g *registry) has(id string) bool {
	_, ok := g.rooms.Load(id)
	return ok || id == ""
}

func (g *registry) lookup(id string) (*room, bool) {
	v, ok := g.rooms.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*room), true
}

func (g *registry) remove(id string) {
	g.rooms.Delete(id)
}

// close refuses further rooms and returns the ones still live
func (g *registry) close() []*room {
	g.reserve.Lock()
	defer g.reserve.Unlock()

	g.closed = true
	return g.snapshot()
}

func (g *registry) snapshot() []*room {
	var rooms []*room
	g.rooms.Range(func(_, v any) bool {
		rooms = append(rooms, v.(*room))
		return true
	})
	return rooms
}

func (g *registry) len() int {
	n := 0
	g.rooms.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
