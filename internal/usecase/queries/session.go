package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"petsitter-booking/internal/domain/session"
	"petsitter-booking/internal/infra"
	"petsitter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type SessionReadStore interface {
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)
}

type SessionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
}

type sessionQueriesImpl struct {
	sessions SessionReadStore
	requests RequestReadStore
}

func NewSessionQueries(sessions SessionReadStore, requests RequestReadStore) SessionQueries {
	return &sessionQueriesImpl{sessions: sessions, requests: requests}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	s, err := q.sessions.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, err
	}
	badge, err := q.requests.HasPending(ctx)
	if err != nil {
		return nil, err
	}
	v := toSessionView(s)
	v.Badge = badge
	return v, nil
}

func toSessionView(s *session.Session) *SessionView {
	sel := s.Selection()
	c := s.Contact()
	d := s.Draft()

	v := &SessionView{
		ID:   s.ID(),
		View: s.View().String(),
		Selection: SelectionView{
			ServiceType:     sel.ServiceType.String(),
			ServiceLabel:    sel.ServiceType.Label(),
			NumberOfPets:    sel.Pets,
			DurationMinutes: sel.DurationMinutes,
			Date:            sel.Date.Format(time.DateOnly),
			FullDay:         sel.ServiceType.IsFullDay(),
		},
		PetOptions:      nonNil(s.PetOptions()),
		DurationOptions: nonNil(s.DurationOptions()),
		Price:           priceOf(s.Quote()),
		Contact: ContactView{
			Name:   c.Name,
			Email:  c.Email,
			Phone:  c.Phone,
			Street: c.Address.Street,
			City:   c.Address.City,
			State:  c.Address.State,
			Zip:    c.Address.Zip,
		},
		DraftSlots:     make([]DraftSlotView, 0, d.Len()),
		DraftTotal:     d.Total().String(),
		DatesWithSlots: []string{},
		UpdatedAt:      s.UpdatedAt(),
	}
	for _, slot := range d.Slots() {
		v.DraftSlots = append(v.DraftSlots, DraftSlotView{
			ID:              slot.ID,
			Date:            slot.Date.Format(time.DateOnly),
			Category:        slot.Category.String(),
			TimeLabel:       slot.Category.Label(),
			DateTime:        slot.DateTime(),
			ServiceType:     slot.ServiceType.String(),
			ServiceLabel:    slot.ServiceType.Label(),
			NumberOfPets:    slot.Pets,
			DurationMinutes: slot.DurationMinutes,
			Price:           slot.Price.String(),
		})
	}
	for _, date := range d.DatesWithSlots() {
		v.DatesWithSlots = append(v.DatesWithSlots, date.Format(time.DateOnly))
	}
	return v
}
