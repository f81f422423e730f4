package repo

import (
	"context"
	"sync"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
)

// MemorySessionRepository keeps turn history in process memory. Used when no
// Redis is configured, and by tests.
type MemorySessionRepository struct {
	mu    sync.RWMutex
	turns map[string][]*model.TurnRecord
}

var _ model.SessionRepository = (*MemorySessionRepository)(nil)

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{turns: make(map[string][]*model.TurnRecord)}
}

func (r *MemorySessionRepository) AppendTurn(_ context.Context, sessionID string, turn *model.TurnRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *turn
	r.turns[sessionID] = append(r.turns[sessionID], &copied)
	return nil
}

func (r *MemorySessionRepository) LoadTurns(_ context.Context, sessionID string) ([]*model.TurnRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.turns[sessionID]
	out := make([]*model.TurnRecord, len(stored))
	for i, turn := range stored {
		copied := *turn
		out[i] = &copied
	}
	return out, nil
}

func (r *MemorySessionRepository) ClearTurns(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.turns, sessionID)
	return nil
}

func (r *MemorySessionRepository) TurnCount(_ context.Context, sessionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.turns[sessionID]), nil
}
