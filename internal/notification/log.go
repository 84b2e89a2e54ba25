package notification

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/KirkDiggler/mafiad/internal/common/clock"
	"github.com/KirkDiggler/mafiad/internal/models"
)

// ErrLogClosed is returned when appending after the End notification
var ErrLogClosed = errors.New("notification log already ended")

// Log is an append-only, ordered sequence of room events. Any number of
// cursors can replay it from the start at their own pace.
type Log struct {
	clock clock.Clock

	mu      sync.Mutex
	entries []models.Notification
	grew    chan struct{}
	ended   bool
}

// New creates an empty log. A nil clock uses the system clock.
func New(c clock.Clock) *Log {
	if c == nil {
		c = clock.New()
	}

	return &Log{
		clock: c,
		grew:  make(chan struct{}),
	}
}

// Append adds a notification to the end of the log and wakes every waiting cursor
func (l *Log) Append(t models.NotificationType, payload string) (models.Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ended {
		return models.Notification{}, ErrLogClosed
	}

	n := models.Notification{
		Seq:       len(l.entries),
		Type:      t,
		Payload:   payload,
		CreatedAt: l.clock.Now(),
	}
	l.entries = append(l.entries, n)
	if t == models.NotificationEnd {
		l.ended = true
	}

	close(l.grew)
	l.grew = make(chan struct{})
	return n, nil
}

// Len returns the number of notifications appended so far
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Ended reports whether End has been appended
func (l *Log) Ended() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ended
}

// Snapshot returns a copy of every notification appended so far
func (l *Log) Snapshot() []models.Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Notification(nil), l.entries...)
}

// Subscribe returns an independent cursor positioned at the first notification
func (l *Log) Subscribe() *Cursor {
	return &Cursor{log: l}
}

// at returns the entry at pos, or a channel that is closed when the log grows
func (l *Log) at(pos int) (models.Notification, <-chan struct{}, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if pos < len(l.entries) {
		return l.entries[pos], nil, true
	}
	return models.Notification{}, l.grew, false
}

// Cursor reads a Log in append order. A Cursor is owned by one reader.
type Cursor struct {
	log  *Log
	pos  int
	done bool
}

// Next returns the next notification, parking while the cursor is caught up.
// After the End notification has been returned every call yields io.EOF.
func (c *Cursor) Next(ctx context.Context) (models.Notification, error) {
	if c.done {
		return models.Notification{}, io.EOF
	}

	for {
		n, grew, ok := c.log.at(c.pos)
		if ok {
			c.pos++
			if n.Type == models.NotificationEnd {
				c.done = true
			}
			return n, nil
		}

		select {
		case <-grew:
		case <-ctx.Done():
			return models.Notification{}, ctx.Err()
		}
	}
}

// Position returns how many notifications the cursor has consumed
func (c *Cursor) Position() int {
	return c.pos
}
