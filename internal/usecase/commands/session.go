package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/draft"
	"petsitter-booking/internal/domain/pricing"
	"petsitter-booking/internal/domain/session"
	"petsitter-booking/internal/domain/view"
	"petsitter-booking/internal/pkg/clock"
	"petsitter-booking/internal/pkg/errs"
	"petsitter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const DateLayout = time.DateOnly

type SelectionInput struct {
	ServiceType     *string
	NumberOfPets    *int
	DurationMinutes *int
	Date            *string
}

type ContactInput struct {
	Name   string
	Email  string
	Phone  string
	Street string
	City   string
	State  string
	Zip    string
}

type SubmitResult struct {
	RequestID uuid.UUID
	Total     pricing.Money
}

type SessionCommands interface {
	Create(ctx context.Context) (uuid.UUID, error)
	UpdateSelection(ctx context.Context, id uuid.UUID, in SelectionInput) error
	UpdateContact(ctx context.Context, id uuid.UUID, in ContactInput) error
	ToggleTimeSlot(ctx context.Context, id uuid.UUID, category string) (draft.ToggleResult, error)
	ToggleFullDay(ctx context.Context, id uuid.UUID) (draft.ToggleResult, error)
	RemoveSlot(ctx context.Context, id, slotID uuid.UUID) error
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error)
	Acknowledge(ctx context.Context, id uuid.UUID) error
	SelectTab(ctx context.Context, id uuid.UUID, tab string) error
}

type sessionCommandsImpl struct {
	sessions shared.SessionRepository
	requests shared.RequestRepository
	notifier shared.Notifier
	catalog  *pricing.Catalog
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
}

func NewSessionCommands(
	sessions shared.SessionRepository,
	requests shared.RequestRepository,
	notifier shared.Notifier,
	catalog *pricing.Catalog,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) SessionCommands {
	return &sessionCommandsImpl{
		sessions: sessions,
		requests: requests,
		notifier: notifier,
		catalog:  catalog,
		clock:    clk,
		loc:      loc,
		logger:   logger,
	}
}

func (uc *sessionCommandsImpl) now() time.Time {
	return uc.clock.Now().In(uc.loc)
}

func (uc *sessionCommandsImpl) Create(ctx context.Context) (uuid.UUID, error) {
	s := session.New(uuid.New(), uc.catalog, uc.now())
	if err := uc.sessions.Create(ctx, s); err != nil {
		return uuid.Nil, err
	}
	return s.ID(), nil
}

func (uc *sessionCommandsImpl) update(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, s *session.Session) error) error {
	_, err := uc.sessions.Update(ctx, id, func(ctx context.Context, s *session.Session) error {
		if err := fn(ctx, s); err != nil {
			return err
		}
		s.Touch(uc.now())
		return nil
	})
	return mapSessionErr(err)
}

func (uc *sessionCommandsImpl) UpdateSelection(ctx context.Context, id uuid.UUID, in SelectionInput) error {
	u := session.SelectionUpdate{
		Pets:            in.NumberOfPets,
		DurationMinutes: in.DurationMinutes,
	}
	if in.ServiceType != nil {
		st, err := pricing.ParseServiceType(*in.ServiceType)
		if err != nil {
			return err
		}
		u.ServiceType = &st
	}
	if in.Date != nil {
		d, err := time.ParseInLocation(DateLayout, *in.Date, uc.loc)
		if err != nil {
			return errs.Mark(errs.Wrap(err, "parse date"), errs.ErrInvalidInput)
		}
		u.Date = &d
	}
	return uc.update(ctx, id, func(_ context.Context, s *session.Session) error {
		return s.UpdateSelection(u)
	})
}

func (uc *sessionCommandsImpl) UpdateContact(ctx context.Context, id uuid.UUID, in ContactInput) error {
	c := appointment.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Address: appointment.Address{
			Street: in.Street,
			City:   in.City,
			State:  in.State,
			Zip:    in.Zip,
		},
	}
	return uc.update(ctx, id, func(_ context.Context, s *session.Session) error {
		s.SetContact(c)
		return nil
	})
}

func (uc *sessionCommandsImpl) ToggleTimeSlot(ctx context.Context, id uuid.UUID, category string) (draft.ToggleResult, error) {
	cat, err := appointment.NewTimeCategory(category)
	if err != nil {
		return draft.Unchanged, err
	}
	var res draft.ToggleResult
	err = uc.update(ctx, id, func(_ context.Context, s *session.Session) error {
		var terr error
		res, terr = s.ToggleTimeSlot(cat)
		return terr
	})
	return res, err
}

func (uc *sessionCommandsImpl) ToggleFullDay(ctx context.Context, id uuid.UUID) (draft.ToggleResult, error) {
	var res draft.ToggleResult
	err := uc.update(ctx, id, func(_ context.Context, s *session.Session) error {
		var terr error
		res, terr = s.ToggleFullDay()
		return terr
	})
	return res, err
}

func (uc *sessionCommandsImpl) RemoveSlot(ctx context.Context, id, slotID uuid.UUID) error {
	return uc.update(ctx, id, func(_ context.Context, s *session.Session) error {
		s.RemoveSlot(slotID)
		return nil
	})
}

// Submit stores the request and moves the session to its success view.
// Notification runs after the store write and only logs on failure.
func (uc *sessionCommandsImpl) Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	var stored *appointment.Request
	err := uc.update(ctx, id, func(ctx context.Context, s *session.Session) error {
		req, err := s.BuildRequest(uc.now())
		if err != nil {
			return err
		}
		if err := uc.requests.Append(ctx, req); err != nil {
			return err
		}
		stored = req
		return s.Submitted()
	})
	if err != nil {
		return nil, err
	}

	if nerr := uc.notifier.Notify(ctx, stored); nerr != nil {
		uc.logger.WarnContext(ctx, "Failed to notify appointment request",
			slog.String("request_id", stored.ID().String()),
			slog.Any("error", nerr),
		)
	}
	return &SubmitResult{RequestID: stored.ID(), Total: stored.Total()}, nil
}

func (uc *sessionCommandsImpl) Acknowledge(ctx context.Context, id uuid.UUID) error {
	return uc.update(ctx, id, func(_ context.Context, s *session.Session) error {
		s.Acknowledge()
		return nil
	})
}

func (uc *sessionCommandsImpl) SelectTab(ctx context.Context, id uuid.UUID, tab string) error {
	t, err := view.NewTab(tab)
	if err != nil {
		return err
	}
	return uc.update(ctx, id, func(_ context.Context, s *session.Session) error {
		return s.SelectTab(t)
	})
}
