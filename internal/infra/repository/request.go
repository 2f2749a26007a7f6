package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/infra"

	"github.com/google/uuid"
)

// RequestRepository keeps every submitted request in memory, in append order.
type RequestRepository struct {
	mu       sync.RWMutex
	requests []*appointment.Request
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Append(_ context.Context, req *appointment.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(req.ID()) >= 0 {
		return infra.WrapRepoErr("request already exists", nil, infra.KindDuplicateKey)
	}
	r.requests = append(r.requests, req.Clone())
	return nil
}

func (r *RequestRepository) SetSlotStatus(_ context.Context, requestID, slotID uuid.UUID, status appointment.Status) (*appointment.Request, error) {
	return r.update(requestID, func(req *appointment.Request) error {
		return req.SetSlotStatus(slotID, status)
	})
}

func (r *RequestRepository) SetAllSlotStatuses(_ context.Context, requestID uuid.UUID, status appointment.Status) (*appointment.Request, error) {
	return r.update(requestID, func(req *appointment.Request) error {
		return req.SetAllSlotStatuses(status)
	})
}

// update applies fn to a copy and stores it only when fn succeeds.
func (r *RequestRepository) update(requestID uuid.UUID, fn func(*appointment.Request) error) (*appointment.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(requestID)
	if i < 0 {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	next := r.requests[i].Clone()
	if err := fn(next); err != nil {
		if errors.Is(err, appointment.ErrSlotNotFound) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	r.requests[i] = next
	return next.Clone(), nil
}

// List returns copies ordered by submission time, newest first. Ties keep the later append first.
func (r *RequestRepository) List(_ context.Context) ([]*appointment.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*appointment.Request, 0, len(r.requests))
	for i := len(r.requests) - 1; i >= 0; i-- {
		out = append(out, r.requests[i].Clone())
	}
	slices.SortStableFunc(out, func(a, b *appointment.Request) int {
		return b.SubmittedAt().Compare(a.SubmittedAt())
	})
	return out, nil
}

func (r *RequestRepository) Get(_ context.Context, requestID uuid.UUID) (*appointment.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(requestID)
	if i < 0 {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return r.requests[i].Clone(), nil
}

func (r *RequestRepository) HasPending(_ context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.ContainsFunc(r.requests, (*appointment.Request).HasPending), nil
}

func (r *RequestRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.requests, func(req *appointment.Request) bool { return req.ID() == id })
}
