//go:build unit

package session_test

import (
	"errors"
	"testing"
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/pricing"
	"petsitter-booking/internal/domain/session"
	"petsitter-booking/internal/domain/view"
	"petsitter-booking/internal/pkg/ptr"
	"petsitter-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	est = time.FixedZone("EST", -5*60*60)
	now = time.Date(2026, 10, 15, 14, 30, 0, 0, est)
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	c, err := pricing.DefaultCatalog()
	require.NoError(t, err)
	return session.New(uuid.Nil, c, now)
}

func TestNew(t *testing.T) {
	s := newSession(t)

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, view.CustomerForm, s.View())
	assert.Equal(t, session.Selection{
		ServiceType:     pricing.ServiceDropIn,
		Pets:            1,
		DurationMinutes: 30,
		Date:            time.Date(2026, 10, 15, 0, 0, 0, 0, est),
	}, s.Selection())
	assert.True(t, s.Quote().Available)
	assert.Equal(t, "25.00", s.Quote().Price.String())
	assert.Equal(t, []int{30, 45, 60}, s.DurationOptions())
	assert.True(t, s.Draft().IsEmpty())
}

func TestSession_UpdateSelection(t *testing.T) {
	t.Run("pets not offered by the new service reset to the first option", func(t *testing.T) {
		s := newSession(t)
		require.NoError(t, s.UpdateSelection(session.SelectionUpdate{Pets: ptr.To(5)}))
		require.NoError(t, s.UpdateSelection(session.SelectionUpdate{ServiceType: ptr.To(pricing.ServiceOvernight)}))

		assert.Equal(t, 1, s.Selection().Pets)
		assert.Equal(t, 0, s.Selection().DurationMinutes)
		assert.Equal(t, "100.00", s.Quote().Price.String())
		assert.Empty(t, s.DurationOptions())
	})

	t.Run("duration resets when pets change", func(t *testing.T) {
		s := newSession(t)
		require.NoError(t, s.UpdateSelection(session.SelectionUpdate{Pets: ptr.To(4)}))
		assert.Equal(t, 60, s.Selection().DurationMinutes)
		assert.Equal(t, "50.00", s.Quote().Price.String())
	})

	t.Run("date is truncated to the day", func(t *testing.T) {
		s := newSession(t)
		require.NoError(t, s.UpdateSelection(session.SelectionUpdate{Date: ptr.To(time.Date(2026, 12, 1, 18, 5, 0, 0, est))}))
		assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, est), s.Selection().Date)
	})

	t.Run("unknown service is rejected and selection kept", func(t *testing.T) {
		s := newSession(t)
		before := s.Selection()
		err := s.UpdateSelection(session.SelectionUpdate{ServiceType: ptr.To(pricing.ServiceType("grooming"))})
		assert.ErrorIs(t, err, pricing.ErrUnknownServiceType)
		assert.Equal(t, before, s.Selection())
	})
}

func TestSession_Submit(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		s := newSession(t)
		s.SetContact(builder.DefaultCustomer())
		require.NoError(t, s.UpdateSelection(session.SelectionUpdate{Pets: ptr.To(2), DurationMinutes: ptr.To(45)}))
		res, err := s.ToggleTimeSlot(appointment.Morning)
		require.NoError(t, err)
		require.Equal(t, "added", res.String())

		req, err := s.BuildRequest(now)
		require.NoError(t, err)
		assert.Equal(t, "35.00", req.Total().String())
		assert.Equal(t, "Jane Doe", req.Customer().Name)
		assert.Equal(t, time.Date(2026, 10, 15, 9, 0, 0, 0, est), req.Slots()[0].DateTime())
		assert.Equal(t, now, req.SubmittedAt())

		// building alone does not consume the form
		assert.Equal(t, 1, s.Draft().Len())

		require.NoError(t, s.Submitted())
		assert.Equal(t, view.CustomerSuccess, s.View())
		assert.True(t, s.Draft().IsEmpty())
		assert.Equal(t, appointment.Customer{}, s.Contact())

		s.Acknowledge()
		assert.Equal(t, view.CustomerForm, s.View())
	})

	t.Run("missing contact field", func(t *testing.T) {
		s := newSession(t)
		c := builder.DefaultCustomer()
		c.Phone = ""
		s.SetContact(c)
		_, err := s.ToggleTimeSlot(appointment.Midday)
		require.NoError(t, err)

		req, err := s.BuildRequest(now)
		require.Nil(t, req)
		assert.ErrorIs(t, err, session.ErrIncomplete)

		var verr *session.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"phone"}, verr.Fields)

		assert.Equal(t, 1, s.Draft().Len())
		assert.Equal(t, c, s.Contact())
		assert.Equal(t, view.CustomerForm, s.View())
	})

	t.Run("zero slots", func(t *testing.T) {
		s := newSession(t)
		s.SetContact(builder.DefaultCustomer())

		_, err := s.BuildRequest(now)
		var verr *session.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{session.FieldSlots}, verr.Fields)
	})

	t.Run("submit from the admin tab is rejected", func(t *testing.T) {
		s := newSession(t)
		s.SetContact(builder.DefaultCustomer())
		_, err := s.ToggleTimeSlot(appointment.Morning)
		require.NoError(t, err)
		require.NoError(t, s.SelectTab(view.TabAdmin))

		_, err = s.BuildRequest(now)
		assert.ErrorIs(t, err, view.ErrInvalidState)
	})
}

func TestSession_Draft(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.UpdateSelection(session.SelectionUpdate{ServiceType: ptr.To(pricing.ServiceTwentyFourHour), Pets: ptr.To(3)}))

	_, err := s.ToggleTimeSlot(appointment.Morning)
	assert.Error(t, err)

	res, err := s.ToggleFullDay()
	require.NoError(t, err)
	assert.Equal(t, "added", res.String())
	assert.Equal(t, "215.00", s.Draft().Total().String())

	id := s.Draft().Slots()[0].ID
	assert.True(t, s.RemoveSlot(id))
	assert.False(t, s.RemoveSlot(id))
}
