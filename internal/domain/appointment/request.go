package appointment

import (
	"slices"
	"time"

	"petsitter-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// Request is one customer's submission. It is never deleted; only slot statuses change after creation.
type Request struct {
	id          uuid.UUID
	customer    Customer
	slots       []Slot
	submittedAt time.Time
}

// NewRequestID returns a time-ordered id so rapid successive submissions never collide.
func NewRequestID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

func NewRequest(id uuid.UUID, customer Customer, slots []Slot, submittedAt time.Time) (*Request, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	if id == uuid.Nil {
		id = NewRequestID()
	}
	return &Request{
		id:          id,
		customer:    customer,
		slots:       slices.Clone(slots),
		submittedAt: submittedAt,
	}, nil
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) Customer() Customer     { return r.customer }
func (r *Request) Slots() []Slot          { return slices.Clone(r.slots) }
func (r *Request) SubmittedAt() time.Time { return r.submittedAt }

func (r *Request) Total() pricing.Money {
	var total pricing.Money
	for _, s := range r.slots {
		total = total.Add(s.price)
	}
	return total
}

// AllPending gates the bulk accept/deny controls.
func (r *Request) AllPending() bool {
	for _, s := range r.slots {
		if !s.IsPending() {
			return false
		}
	}
	return true
}

func (r *Request) HasPending() bool {
	return slices.ContainsFunc(r.slots, Slot.IsPending)
}

func (r *Request) SetSlotStatus(slotID uuid.UUID, status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	i := slices.IndexFunc(r.slots, func(s Slot) bool { return s.id == slotID })
	if i < 0 {
		return ErrSlotNotFound
	}
	r.slots[i].status = status
	return nil
}

// SetAllSlotStatuses overrides every slot, whatever its current status.
func (r *Request) SetAllSlotStatuses(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	for i := range r.slots {
		r.slots[i].status = status
	}
	return nil
}

func (r *Request) Clone() *Request {
	cp := *r
	cp.slots = slices.Clone(r.slots)
	return &cp
}
