//go:build unit

package draft_test

import (
	"testing"
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/draft"
	"petsitter-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var est = time.FixedZone("EST", -5*60*60)

func day(d int) time.Time {
	return time.Date(2026, 11, d, 0, 0, 0, 0, est)
}

func quote(t *testing.T, sel pricing.Selection) pricing.Quote {
	t.Helper()
	c, err := pricing.DefaultCatalog()
	require.NoError(t, err)
	return c.Resolve(sel)
}

func dropIn(t *testing.T) pricing.Quote {
	return quote(t, pricing.Selection{ServiceType: pricing.ServiceDropIn, Pets: 2, DurationMinutes: 45})
}

func TestDraft_ToggleTimeSlot(t *testing.T) {
	t.Run("toggling twice restores the prior draft", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleTimeSlot(day(3), appointment.Midday, dropIn(t))
		require.NoError(t, err)
		before := d.Slots()

		res, err := d.ToggleTimeSlot(day(5), appointment.Morning, dropIn(t))
		require.NoError(t, err)
		assert.Equal(t, draft.Added, res)
		require.Equal(t, 2, d.Len())

		res, err = d.ToggleTimeSlot(day(5), appointment.Morning, dropIn(t))
		require.NoError(t, err)
		assert.Equal(t, draft.Removed, res)
		assert.Equal(t, before, d.Slots())
	})

	t.Run("slot snapshots the quote", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleTimeSlot(day(3).Add(15*time.Hour), appointment.Morning, dropIn(t))
		require.NoError(t, err)

		s := d.Slots()[0]
		assert.NotEqual(t, uuid.Nil, s.ID)
		assert.Equal(t, day(3), s.Date)
		assert.Equal(t, pricing.ServiceDropIn, s.ServiceType)
		assert.Equal(t, 2, s.Pets)
		assert.Equal(t, 45, s.DurationMinutes)
		assert.Equal(t, "35.00", s.Price.String())
		assert.Equal(t, time.Date(2026, 11, 3, 9, 0, 0, 0, est), s.DateTime())
	})

	t.Run("unpriceable quote is reported as unchanged", func(t *testing.T) {
		d := draft.New()
		q := pricing.Quote{Selection: pricing.Selection{ServiceType: pricing.ServiceDropIn, Pets: 9, DurationMinutes: 30}}
		res, err := d.ToggleTimeSlot(day(3), appointment.Morning, q)
		require.NoError(t, err)
		assert.Equal(t, draft.Unchanged, res)
		assert.True(t, d.IsEmpty())
	})

	t.Run("existing slot is removed even when unpriceable", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleTimeSlot(day(3), appointment.Morning, dropIn(t))
		require.NoError(t, err)

		q := pricing.Quote{Selection: pricing.Selection{ServiceType: pricing.ServiceDropIn, Pets: 9}}
		res, err := d.ToggleTimeSlot(day(3), appointment.Morning, q)
		require.NoError(t, err)
		assert.Equal(t, draft.Removed, res)
	})

	t.Run("key matches a full-day slot in the same window", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleFullDay(day(3), quote(t, pricing.Selection{ServiceType: pricing.ServiceDaytimeCare, Pets: 1}))
		require.NoError(t, err)

		res, err := d.ToggleTimeSlot(day(3), appointment.Morning, dropIn(t))
		require.NoError(t, err)
		assert.Equal(t, draft.Removed, res)
		assert.True(t, d.IsEmpty())
	})

	t.Run("full-day service is rejected", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleTimeSlot(day(3), appointment.Morning, quote(t, pricing.Selection{ServiceType: pricing.ServiceOvernight, Pets: 1}))
		assert.ErrorIs(t, err, draft.ErrTimeSlotService)
	})

	t.Run("invalid category is rejected", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleTimeSlot(day(3), appointment.TimeCategory("night"), dropIn(t))
		assert.ErrorIs(t, err, appointment.ErrInvalidTimeCategory)
	})
}

func TestDraft_ToggleFullDay(t *testing.T) {
	overnight := quote(t, pricing.Selection{ServiceType: pricing.ServiceOvernight, Pets: 2})

	t.Run("second toggle for the same date and service removes the first", func(t *testing.T) {
		d := draft.New()
		res, err := d.ToggleFullDay(day(4), overnight)
		require.NoError(t, err)
		assert.Equal(t, draft.Added, res)

		res, err = d.ToggleFullDay(day(4), overnight)
		require.NoError(t, err)
		assert.Equal(t, draft.Removed, res)
		assert.True(t, d.IsEmpty())
	})

	t.Run("different full-day services on the same date coexist", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleFullDay(day(4), overnight)
		require.NoError(t, err)
		_, err = d.ToggleFullDay(day(4), quote(t, pricing.Selection{ServiceType: pricing.ServiceTwentyFourHour, Pets: 3}))
		require.NoError(t, err)

		require.Equal(t, 2, d.Len())
		assert.Equal(t, "340.00", d.Total().String())
	})

	t.Run("window depends on the service", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleFullDay(day(4), overnight)
		require.NoError(t, err)
		_, err = d.ToggleFullDay(day(5), quote(t, pricing.Selection{ServiceType: pricing.ServiceDaytimeCare, Pets: 1}))
		require.NoError(t, err)

		slots := d.Slots()
		assert.Equal(t, appointment.Evening, slots[0].Category)
		assert.Equal(t, 0, slots[0].DurationMinutes)
		assert.Equal(t, appointment.Morning, slots[1].Category)
	})

	t.Run("duration-priced service is rejected", func(t *testing.T) {
		d := draft.New()
		_, err := d.ToggleFullDay(day(4), dropIn(t))
		assert.ErrorIs(t, err, draft.ErrFullDayService)
	})
}

func TestDraft_Ordering(t *testing.T) {
	d := draft.New()
	for _, in := range []struct {
		date int
		cat  appointment.TimeCategory
	}{
		{9, appointment.Evening},
		{2, appointment.Midday},
		{9, appointment.Morning},
		{5, appointment.Morning},
	} {
		_, err := d.ToggleTimeSlot(day(in.date), in.cat, dropIn(t))
		require.NoError(t, err)
	}

	slots := d.Slots()
	require.Len(t, slots, 4)
	assert.Equal(t, day(2), slots[0].Date)
	assert.Equal(t, day(5), slots[1].Date)
	// same date keeps insertion order
	assert.Equal(t, appointment.Evening, slots[2].Category)
	assert.Equal(t, appointment.Morning, slots[3].Category)

	assert.Equal(t, []time.Time{day(2), day(5), day(9)}, d.DatesWithSlots())
	assert.Equal(t, "140.00", d.Total().String())
}

func TestDraft_Remove(t *testing.T) {
	d := draft.New()
	_, err := d.ToggleTimeSlot(day(3), appointment.Morning, dropIn(t))
	require.NoError(t, err)

	assert.False(t, d.Remove(uuid.New()))
	assert.Equal(t, 1, d.Len())

	assert.True(t, d.Remove(d.Slots()[0].ID))
	assert.True(t, d.IsEmpty())
	assert.Empty(t, d.DatesWithSlots())
}

func TestDraft_AppointmentSlots(t *testing.T) {
	d := draft.New()
	_, err := d.ToggleTimeSlot(day(3), appointment.Evening, dropIn(t))
	require.NoError(t, err)

	slots := d.AppointmentSlots()
	require.Len(t, slots, 1)
	assert.Equal(t, d.Slots()[0].ID, slots[0].ID())
	assert.Equal(t, time.Date(2026, 11, 3, 16, 0, 0, 0, est), slots[0].DateTime())
	assert.Equal(t, appointment.StatusPending, slots[0].Status())
}
