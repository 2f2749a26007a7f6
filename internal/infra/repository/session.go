package repository

import (
	"context"
	"sync"

	"petsitter-booking/internal/domain/session"
	"petsitter-booking/internal/infra"

	"github.com/google/uuid"
)

type SessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[uuid.UUID]*session.Session)}
}

func (r *SessionRepository) Create(_ context.Context, s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID()]; ok {
		return infra.WrapRepoErr("session already exists", nil, infra.KindDuplicateKey)
	}
	r.sessions[s.ID()] = s.Clone()
	return nil
}

func (r *SessionRepository) Get(_ context.Context, id uuid.UUID) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return s.Clone(), nil
}

// Update runs fn on a working copy while holding the lock.
// The copy replaces the stored session only when fn returns nil.
func (r *SessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, s *session.Session) error) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	next := s.Clone()
	if err := fn(ctx, next); err != nil {
		return nil, err
	}
	r.sessions[id] = next
	return next.Clone(), nil
}
