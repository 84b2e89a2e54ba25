package mafia

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/mafiad/internal/barrier"
	"github.com/KirkDiggler/mafiad/internal/common/clock"
	"github.com/KirkDiggler/mafiad/internal/lobby"
	"github.com/KirkDiggler/mafiad/internal/metrics"
	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/KirkDiggler/mafiad/internal/notification"
	"github.com/KirkDiggler/mafiad/internal/random"
	"github.com/KirkDiggler/mafiad/internal/session"
)

type roomConfig struct {
	id         string
	capacity   int
	minPlayers int
	random     random.Source
	clock      clock.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger

	// onRemove runs with the room lock held once the room is closed
	onRemove func(r *room)
}

// room is one registry entry. Every field below mu is guarded by it, and so
// are the barriers, which use mu as their Locker.
type room struct {
	id         string
	capacity   int
	minPlayers int
	random     random.Source
	clock      clock.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
	onRemove   func(r *room)

	mu     sync.Mutex
	lobby  *lobby.Room
	log    *notification.Log
	game   *session.Session
	phase  models.Phase
	day    int
	closed bool

	ready *barrier.Barrier[struct{}, map[uint64]models.Role]
	night *barrier.Barrier[struct{}, struct{}]
	vote  *barrier.Barrier[uint64, bool]

	// actions taken during the current night
	killed  map[uint64]bool
	checked map[uint64]bool

	startedAt time.Time
	roster    []models.RecordedPlayer
	rosterIdx map[uint64]int

	// pending is archived by the service after the lock is released
	pending *models.GameRecord
}

func newRoom(cfg *roomConfig) (*room, error) {
	lr, err := lobby.New(&lobby.Config{Random: cfg.random})
	if err != nil {
		return nil, err
	}

	r := &room{
		id:         cfg.id,
		capacity:   cfg.capacity,
		minPlayers: cfg.minPlayers,
		random:     cfg.random,
		clock:      cfg.clock,
		metrics:    cfg.metrics,
		logger:     cfg.logger.With("room_id", cfg.id),
		onRemove:   cfg.onRemove,
		lobby:      lr,
		log:        notification.New(cfg.clock),
		phase:      models.PhaseLobby,
		killed:     make(map[uint64]bool),
		checked:    make(map[uint64]bool),
		rosterIdx:  make(map[uint64]int),
	}

	r.ready, err = barrier.New(&barrier.Config[struct{}, map[uint64]models.Role]{
		Locker:  &r.mu,
		Quorum:  cfg.capacity,
		Resolve: r.startGame,
	})
	if err != nil {
		return nil, err
	}

	r.night, err = barrier.New(&barrier.Config[struct{}, struct{}]{
		Locker:  &r.mu,
		Resolve: r.nightOver,
	})
	if err != nil {
		return nil, err
	}

	r.vote, err = barrier.New(&barrier.Config[uint64, bool]{
		Locker:  &r.mu,
		Resolve: r.resolveDay,
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (r *room) notify(t models.NotificationType, payload string) {
	if _, err := r.log.Append(t, payload); err != nil {
		// only End closes the log and nothing appends after it
		r.logger.Error("notification.append", "type", t, "err", err)
	}
}

func (r *room) join(nickname string) (models.User, error) {
	if r.phase != models.PhaseLobby {
		return models.User{}, ErrGameAlreadyStarted
	}

	if r.lobby.Size() >= r.capacity {
		return models.User{}, ErrRoomFull
	}

	user := r.lobby.Join(nickname)
	r.ready.Expect(user.ID)
	r.notify(models.NotificationJoin, models.PlayerPayload(user.Nickname, user.ID))
	return user, nil
}

// leave reports whether the room was closed by the departure
func (r *room) leave(id uint64) (bool, error) {
	nickname, err := r.lobby.Nickname(id)
	if err != nil {
		return false, ErrPlayerNotFound
	}

	if err := r.lobby.Leave(id); err != nil {
		return false, ErrPlayerNotFound
	}
	r.notify(models.NotificationLeave, models.PlayerPayload(nickname, id))
	r.ready.Forfeit(id)

	if r.game != nil && r.game.Has(id) {
		r.roster[r.rosterIdx[id]].Left = true

		outcome, err := r.game.Leave(id)
		if err != nil {
			return false, ErrAmbiguousState
		}

		if outcome != "" {
			r.finish(outcome)
			return true, nil
		}

		// the remaining players may all be waiting on this one
		r.night.Forfeit(id)
		r.vote.Forfeit(id)
	}

	if !r.closed && r.lobby.Size() == 0 {
		r.finish(models.OutcomeRoomClosed)
	}
	return r.closed, nil
}

func (r *room) readyUp(ctx context.Context, id uint64) (models.Role, error) {
	if r.phase != models.PhaseLobby {
		return "", ErrGameAlreadyStarted
	}

	if _, err := r.lobby.Ready(id); err != nil {
		return "", ErrPlayerNotFound
	}
	r.metrics.PhaseArrival(string(models.PhaseLobby))

	roles, err := r.ready.Arrive(ctx, id, struct{}{})
	if err != nil {
		if ctx.Err() != nil && r.phase == models.PhaseLobby {
			_, _ = r.lobby.CancelReady(id)
		}
		return "", arrivalErr(err)
	}

	role, ok := roles[id]
	if !ok {
		// left while waiting
		return "", ErrPlayerNotFound
	}
	return role, nil
}

// startGame runs once every member is ready and the room is full
func (r *room) startGame(map[uint64]struct{}) (map[uint64]models.Role, error) {
	game, err := session.New(&session.Config{
		Users:      r.lobby.Users(),
		Random:     r.random,
		MinPlayers: r.minPlayers,
	})
	if err != nil {
		if errors.Is(err, session.ErrNotEnoughPlayers) {
			return nil, ErrNotEnoughPlayers
		}
		return nil, err
	}

	r.game = game
	r.phase = models.PhaseNight
	r.startedAt = r.clock.Now()

	roles := make(map[uint64]models.Role)
	ids := game.IDs()
	for i, p := range game.Players() {
		roles[p.ID] = p.Role
		r.rosterIdx[p.ID] = i
		r.roster = append(r.roster, models.RecordedPlayer{
			ID:       p.ID,
			Nickname: p.Nickname,
			Role:     p.Role,
			Alive:    true,
		})
	}
	r.night.Expect(ids...)
	r.vote.Expect(ids...)

	r.notify(models.NotificationStartTheGame, "")
	r.metrics.GameStarted()
	r.logger.Info("game.started", "players", len(ids), "mafia", game.MafiaAlive())
	return roles, nil
}

// requirePhase checks the room is in p with a game running
func (r *room) requirePhase(p models.Phase) error {
	switch {
	case r.game == nil:
		return ErrGameNotStarted
	case r.phase != p:
		return ErrWrongPhase
	}
	return nil
}

func (r *room) passNight(ctx context.Context, id uint64) error {
	if err := r.requirePhase(models.PhaseNight); err != nil {
		return err
	}

	if !r.game.Has(id) {
		return ErrPlayerNotFound
	}
	r.metrics.PhaseArrival(string(models.PhaseNight))

	if _, err := r.night.Arrive(ctx, id, struct{}{}); err != nil {
		return arrivalErr(err)
	}

	if r.game != nil && !r.game.Has(id) {
		return ErrPlayerNotFound
	}
	return nil
}

// nightOver switches the room to the day once every player has passed the night
func (r *room) nightOver(map[uint64]struct{}) (struct{}, error) {
	r.phase = models.PhaseDay
	r.day++
	r.killed = make(map[uint64]bool)
	r.checked = make(map[uint64]bool)

	r.logger.Debug("day.started", "day", r.day)
	return struct{}{}, nil
}

// actor returns the caller if they are alive and hold role
func (r *room) actor(id uint64, role models.Role) (models.Player, error) {
	p, err := r.game.Player(id)
	if err != nil {
		return models.Player{}, ErrPlayerNotFound
	}

	if p.Role != role || !p.IsAlive() {
		return models.Player{}, ErrNotAuthorizedRole
	}
	return p, nil
}

func (r *room) kill(killer, target uint64) (models.Outcome, error) {
	if err := r.requirePhase(models.PhaseNight); err != nil {
		return "", err
	}

	if _, err := r.actor(killer, models.RoleMafia); err != nil {
		return "", err
	}

	if r.killed[killer] {
		return "", ErrAlreadyActed
	}

	victim, err := r.game.Player(target)
	if err != nil {
		return "", ErrPlayerNotFound
	}

	if !victim.IsAlive() {
		return "", ErrAlreadyDead
	}

	outcome, err := r.game.Kill(target)
	if err != nil {
		return "", ErrAmbiguousState
	}
	r.killed[killer] = true
	r.roster[r.rosterIdx[target]].Alive = false
	r.notify(models.NotificationKill, models.PlayerPayload(victim.Nickname, victim.ID))

	if outcome != "" {
		r.finish(outcome)
	}
	return outcome, nil
}

func (r *room) check(officer, target uint64) (bool, error) {
	if err := r.requirePhase(models.PhaseNight); err != nil {
		return false, err
	}

	if _, err := r.actor(officer, models.RoleOfficer); err != nil {
		return false, err
	}

	if r.checked[officer] {
		return false, ErrAlreadyActed
	}

	isMafia, err := r.game.IsMafia(target)
	if err != nil {
		return false, ErrPlayerNotFound
	}
	r.checked[officer] = true
	return isMafia, nil
}

func (r *room) castVote(ctx context.Context, voter, target uint64) (bool, error) {
	if err := r.requirePhase(models.PhaseDay); err != nil {
		return false, err
	}

	p, err := r.game.Player(voter)
	if err != nil {
		return false, ErrPlayerNotFound
	}

	choice := target
	switch {
	case !p.IsAlive():
		// ghosts always pass
		choice = voter
	case target != voter:
		candidate, err := r.game.Player(target)
		if err != nil {
			return false, ErrPlayerNotFound
		}
		if !candidate.IsAlive() {
			return false, ErrAlreadyDead
		}
	}
	r.metrics.PhaseArrival(string(models.PhaseDay))

	eliminated, err := r.vote.Arrive(ctx, voter, choice)
	if err != nil {
		return false, arrivalErr(err)
	}

	if r.game != nil && !r.game.Has(voter) {
		return false, ErrPlayerNotFound
	}
	return eliminated, nil
}

// resolveDay eliminates the unique leader of the tally. A tie eliminates nobody.
func (r *room) resolveDay(votes map[uint64]uint64) (bool, error) {
	tally := session.Tally{}
	for voter, target := range votes {
		// passes and votes for players who left do not count
		if target == voter || !r.game.Has(target) {
			continue
		}
		tally.Add(target)
	}

	leader, ok := tally.Leader()
	if ok {
		victim, err := r.game.Player(leader)
		if err != nil {
			return false, ErrAmbiguousState
		}

		outcome, err := r.game.Kill(leader)
		if err != nil {
			return false, ErrAmbiguousState
		}
		r.roster[r.rosterIdx[leader]].Alive = false
		r.notify(models.NotificationKill, models.PlayerPayload(victim.Nickname, victim.ID))

		if outcome != "" {
			r.finish(outcome)
			return true, nil
		}
	}

	r.phase = models.PhaseNight
	r.logger.Debug("day.resolved", "day", r.day, "eliminated", ok)
	return ok, nil
}

// finish ends the room: the session is discarded, End is appended, every
// parked caller is released and the room leaves the registry
func (r *room) finish(outcome models.Outcome) {
	if r.closed {
		return
	}

	started := len(r.roster) > 0
	r.closed = true
	r.phase = models.PhaseFinished
	r.game = nil

	r.notify(models.NotificationEnd, string(outcome))
	r.abort(ErrGameFinished)
	r.onRemove(r)

	if started {
		r.pending = r.record(outcome)
		r.metrics.GameFinished(string(outcome))
		r.logger.Info("game.finished", "outcome", outcome, "days", r.day)
		return
	}
	r.logger.Info("room.closed")
}

// shutdown closes the room without archiving it
func (r *room) shutdown() {
	if r.closed {
		return
	}

	r.closed = true
	r.phase = models.PhaseFinished
	r.game = nil

	r.notify(models.NotificationEnd, string(models.OutcomeRoomClosed))
	r.abort(ErrShuttingDown)
	r.onRemove(r)
}

func (r *room) abort(err error) {
	r.ready.Abort(err)
	r.night.Abort(err)
	r.vote.Abort(err)
}

func (r *room) record(outcome models.Outcome) *models.GameRecord {
	return &models.GameRecord{
		RoomID:     r.id,
		Outcome:    outcome,
		Days:       r.day,
		Players:    append([]models.RecordedPlayer(nil), r.roster...),
		StartedAt:  r.startedAt,
		FinishedAt: r.clock.Now(),
	}
}

func (r *room) view() *GetRoomOutput {
	out := &GetRoomOutput{
		RoomID:   r.id,
		Phase:    r.phase,
		Day:      r.day,
		Capacity: r.capacity,
		Members:  make([]Member, 0, r.lobby.Size()),
	}

	for _, u := range r.lobby.Users() {
		m := Member{
			ID:       u.ID,
			Nickname: u.Nickname,
			Ready:    r.lobby.IsReady(u.ID),
			Alive:    true,
		}
		if r.game != nil {
			if killed, err := r.game.IsKilled(u.ID); err == nil {
				m.Alive = !killed
			}
		}
		out.Members = append(out.Members, m)
	}
	return out
}

// arrivalErr maps barrier errors onto the public taxonomy
func arrivalErr(err error) error {
	switch {
	case errors.Is(err, barrier.ErrNotExpected):
		return ErrPlayerNotFound
	case errors.Is(err, barrier.ErrAlreadyArrived):
		return ErrAlreadyActed
	}
	return err
}
