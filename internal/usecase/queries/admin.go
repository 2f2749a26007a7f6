package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/infra"
	"petsitter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestReadStore interface {
	List(ctx context.Context) ([]*appointment.Request, error)
	Get(ctx context.Context, id uuid.UUID) (*appointment.Request, error)
	HasPending(ctx context.Context) (bool, error)
}

type AdminQueries interface {
	ListRequests(ctx context.Context) ([]*RequestView, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*RequestView, error)
	Badge(ctx context.Context) (*BadgeView, error)
}

type adminQueriesImpl struct {
	repo RequestReadStore
}

func NewAdminQueries(repo RequestReadStore) AdminQueries {
	return &adminQueriesImpl{repo: repo}
}

// ListRequests returns the newest submission first.
func (q *adminQueriesImpl) ListRequests(ctx context.Context) ([]*RequestView, error) {
	reqs, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*RequestView, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toRequestView(r))
	}
	return out, nil
}

func (q *adminQueriesImpl) GetRequest(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	r, err := q.repo.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, err
	}
	return toRequestView(r), nil
}

func (q *adminQueriesImpl) Badge(ctx context.Context) (*BadgeView, error) {
	pending, err := q.repo.HasPending(ctx)
	if err != nil {
		return nil, err
	}
	return &BadgeView{Unread: pending}, nil
}

func toRequestView(r *appointment.Request) *RequestView {
	c := r.Customer()
	slots := r.Slots()
	v := &RequestView{
		ID:            r.ID(),
		CustomerName:  c.Name,
		CustomerEmail: c.Email,
		CustomerPhone: c.Phone,
		CustomerAddress: AddressView{
			Street: c.Address.Street,
			City:   c.Address.City,
			State:  c.Address.State,
			Zip:    c.Address.Zip,
		},
		Slots:       make([]SlotView, 0, len(slots)),
		SubmittedAt: r.SubmittedAt(),
		Total:       r.Total().String(),
		AllPending:  r.AllPending(),
		HasPending:  r.HasPending(),
	}
	for _, s := range slots {
		v.Slots = append(v.Slots, SlotView{
			ID:              s.ID(),
			DateTime:        s.DateTime(),
			Status:          s.Status().String(),
			ServiceType:     s.ServiceType().String(),
			ServiceLabel:    s.ServiceType().Label(),
			NumberOfPets:    s.NumberOfPets(),
			DurationMinutes: s.DurationMinutes(),
			Price:           s.Price().String(),
		})
	}
	return v
}
