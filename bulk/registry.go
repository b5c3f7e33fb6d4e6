package bulk

import (
	"camp_registration/model"
	"camp_registration/monitoring"
	"sync"
	"time"
)

// Registry keeps one Board per dashboard session.
type Registry struct {
	mu       sync.Mutex
	boards   map[string]*Board
	notifier Notifier
	event    model.EventDetails
}

func NewRegistry(notifier Notifier, event model.EventDetails) *Registry {
	return &Registry{
		boards:   map[string]*Board{},
		notifier: notifier,
		event:    event,
	}
}

// Board returns the session's board, creating an empty one on first use.
func (r *Registry) Board(sessionID string) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.boards[sessionID]
	if !ok {
		b = NewBoard(r.notifier, r.event)
		r.boards[sessionID] = b
		monitoring.SetActiveBoards(len(r.boards))
	}
	return b
}

func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.boards, sessionID)
	monitoring.SetActiveBoards(len(r.boards))
}

// Sweep evicts boards idle for longer than ttl and returns how many were removed.
func (r *Registry) Sweep(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, b := range r.boards {
		if b.Idle(ttl) {
			delete(r.boards, id)
			removed++
		}
	}
	monitoring.SetActiveBoards(len(r.boards))
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}
