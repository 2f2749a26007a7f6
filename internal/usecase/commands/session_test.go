//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/draft"
	"petsitter-booking/internal/domain/pricing"
	"petsitter-booking/internal/domain/session"
	"petsitter-booking/internal/domain/view"
	"petsitter-booking/internal/infra/repository"
	"petsitter-booking/internal/pkg/clock"
	"petsitter-booking/internal/pkg/errs"
	"petsitter-booking/internal/pkg/ptr"
	"petsitter-booking/internal/usecase/commands"
	sharedmock "petsitter-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var est = time.FixedZone("EST", -5*60*60)

type SessionCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	notifier *sharedmock.MockNotifier
	sessions *repository.SessionRepository
	requests *repository.RequestRepository
	clock    *clock.MockClock
	logs     *bytes.Buffer
	cmds     commands.SessionCommands
}

func (s *SessionCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.notifier = sharedmock.NewMockNotifier(s.mockCtrl)
	s.sessions = repository.NewSessionRepository()
	s.requests = repository.NewRequestRepository()
	// 02:30 UTC is still the previous day in the booking zone
	s.clock = clock.NewMockClock(time.Date(2026, 10, 16, 2, 30, 0, 0, time.UTC))
	s.logs = &bytes.Buffer{}

	catalog, err := pricing.DefaultCatalog()
	s.Require().NoError(err)
	logger := slog.New(slog.NewJSONHandler(s.logs, nil))
	s.cmds = commands.NewSessionCommands(s.sessions, s.requests, s.notifier, catalog, s.clock, est, logger)
}

func (s *SessionCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionCommandsSuite(t *testing.T) {
	suite.Run(t, new(SessionCommandsTestSuite))
}

func (s *SessionCommandsTestSuite) newSession() uuid.UUID {
	id, err := s.cmds.Create(s.ctx)
	s.Require().NoError(err)
	return id
}

func (s *SessionCommandsTestSuite) load(id uuid.UUID) *session.Session {
	sess, err := s.sessions.Get(s.ctx, id)
	s.Require().NoError(err)
	return sess
}

func (s *SessionCommandsTestSuite) fillContact(id uuid.UUID) {
	s.Require().NoError(s.cmds.UpdateContact(s.ctx, id, commands.ContactInput{
		Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100",
		Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701",
	}))
}

func (s *SessionCommandsTestSuite) TestCreate() {
	id := s.newSession()
	sess := s.load(id)

	s.Equal(view.CustomerForm, sess.View())
	s.Equal(time.Date(2026, 10, 15, 0, 0, 0, 0, est), sess.Selection().Date)
	s.Equal(pricing.ServiceDropIn, sess.Selection().ServiceType)
}

func (s *SessionCommandsTestSuite) TestUpdateSelection() {
	s.Run("parses service and date", func() {
		id := s.newSession()
		err := s.cmds.UpdateSelection(s.ctx, id, commands.SelectionInput{
			ServiceType:  ptr.To("24_hour_care"),
			NumberOfPets: ptr.To(3),
			Date:         ptr.To("2026-11-02"),
		})
		s.Require().NoError(err)

		sess := s.load(id)
		s.Equal(pricing.ServiceTwentyFourHour, sess.Selection().ServiceType)
		s.Equal(time.Date(2026, 11, 2, 0, 0, 0, 0, est), sess.Selection().Date)
		s.Equal("215.00", sess.Quote().Price.String())
	})

	s.Run("invalid date", func() {
		id := s.newSession()
		err := s.cmds.UpdateSelection(s.ctx, id, commands.SelectionInput{Date: ptr.To("11/02/2026")})
		s.True(errs.Is(err, errs.ErrInvalidInput))
	})

	s.Run("unknown service", func() {
		id := s.newSession()
		err := s.cmds.UpdateSelection(s.ctx, id, commands.SelectionInput{ServiceType: ptr.To("grooming")})
		s.ErrorIs(err, pricing.ErrUnknownServiceType)
	})

	s.Run("unknown session", func() {
		err := s.cmds.UpdateSelection(s.ctx, uuid.New(), commands.SelectionInput{NumberOfPets: ptr.To(2)})
		s.True(errs.Is(err, errs.ErrSessionNotFound))
	})
}

func (s *SessionCommandsTestSuite) TestToggle() {
	id := s.newSession()

	res, err := s.cmds.ToggleTimeSlot(s.ctx, id, "midday")
	s.Require().NoError(err)
	s.Equal(draft.Added, res)

	res, err = s.cmds.ToggleTimeSlot(s.ctx, id, "midday")
	s.Require().NoError(err)
	s.Equal(draft.Removed, res)

	_, err = s.cmds.ToggleTimeSlot(s.ctx, id, "night")
	s.ErrorIs(err, appointment.ErrInvalidTimeCategory)

	_, err = s.cmds.ToggleFullDay(s.ctx, id)
	s.ErrorIs(err, draft.ErrFullDayService)

	s.Require().NoError(s.cmds.UpdateSelection(s.ctx, id, commands.SelectionInput{ServiceType: ptr.To("overnight")}))
	res, err = s.cmds.ToggleFullDay(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(draft.Added, res)

	slot := s.load(id).Draft().Slots()[0]
	s.Equal(appointment.Evening, slot.Category)

	s.Require().NoError(s.cmds.RemoveSlot(s.ctx, id, uuid.New()))
	s.Equal(1, s.load(id).Draft().Len())
	s.Require().NoError(s.cmds.RemoveSlot(s.ctx, id, slot.ID))
	s.True(s.load(id).Draft().IsEmpty())
}

func (s *SessionCommandsTestSuite) TestSubmit() {
	s.Run("stores, notifies and clears the form", func() {
		id := s.newSession()
		s.fillContact(id)
		s.Require().NoError(s.cmds.UpdateSelection(s.ctx, id, commands.SelectionInput{NumberOfPets: ptr.To(2), DurationMinutes: ptr.To(45)}))
		_, err := s.cmds.ToggleTimeSlot(s.ctx, id, "morning")
		s.Require().NoError(err)

		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *appointment.Request) error {
				s.Equal("Jane Doe", req.Customer().Name)
				return nil
			}).Times(1)

		res, err := s.cmds.Submit(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("35.00", res.Total.String())

		stored, err := s.requests.Get(s.ctx, res.RequestID)
		s.Require().NoError(err)
		s.True(s.clock.Now().Equal(stored.SubmittedAt()))
		s.Equal(time.Date(2026, 10, 15, 9, 0, 0, 0, est), stored.Slots()[0].DateTime())

		sess := s.load(id)
		s.Equal(view.CustomerSuccess, sess.View())
		s.True(sess.Draft().IsEmpty())
		s.Empty(sess.Contact().Name)

		s.Require().NoError(s.cmds.Acknowledge(s.ctx, id))
		s.Equal(view.CustomerForm, s.load(id).View())
	})

	s.Run("validation failure neither stores nor clears", func() {
		id := s.newSession()
		_, err := s.cmds.ToggleTimeSlot(s.ctx, id, "morning")
		s.Require().NoError(err)
		before, err := s.requests.List(s.ctx)
		s.Require().NoError(err)

		_, err = s.cmds.Submit(s.ctx, id)
		var verr *session.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal([]string{"name", "email", "phone", "street", "city", "state", "zip"}, verr.Fields)

		after, err := s.requests.List(s.ctx)
		s.Require().NoError(err)
		s.Len(after, len(before))
		s.Equal(1, s.load(id).Draft().Len())
		s.Equal(view.CustomerForm, s.load(id).View())
	})

	s.Run("notifier failure keeps the request", func() {
		id := s.newSession()
		s.fillContact(id)
		_, err := s.cmds.ToggleTimeSlot(s.ctx, id, "evening")
		s.Require().NoError(err)

		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errs.New("broker down")).Times(1)

		res, err := s.cmds.Submit(s.ctx, id)
		s.Require().NoError(err)
		_, err = s.requests.Get(s.ctx, res.RequestID)
		s.NoError(err)
		s.Contains(s.logs.String(), "Failed to notify appointment request")
		s.Equal(view.CustomerSuccess, s.load(id).View())
	})

	s.Run("second submit from the success view is rejected", func() {
		id := s.newSession()
		s.fillContact(id)
		_, err := s.cmds.ToggleTimeSlot(s.ctx, id, "morning")
		s.Require().NoError(err)
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		_, err = s.cmds.Submit(s.ctx, id)
		s.Require().NoError(err)

		_, err = s.cmds.Submit(s.ctx, id)
		s.ErrorIs(err, view.ErrInvalidState)
	})
}

func (s *SessionCommandsTestSuite) TestSelectTab() {
	id := s.newSession()

	s.Require().NoError(s.cmds.SelectTab(s.ctx, id, "admin"))
	s.Equal(view.Admin, s.load(id).View())

	s.Require().NoError(s.cmds.SelectTab(s.ctx, id, "customer"))
	s.Equal(view.CustomerForm, s.load(id).View())

	s.ErrorIs(s.cmds.SelectTab(s.ctx, id, "billing"), view.ErrInvalidTab)
}
