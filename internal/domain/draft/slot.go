package draft

import (
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// Slot is a tentative booking. Service fields are a snapshot taken when it was added.
type Slot struct {
	ID              uuid.UUID
	Date            time.Time
	Category        appointment.TimeCategory
	ServiceType     pricing.ServiceType
	Pets            int
	DurationMinutes int
	Price           pricing.Money
}

func (s Slot) DateTime() time.Time {
	return s.Category.At(s.Date)
}

func (s Slot) ToAppointment() appointment.Slot {
	return appointment.NewSlot(s.ID, s.DateTime(), s.ServiceType, s.Pets, s.DurationMinutes, s.Price)
}

// FullDayCategory is the window a full-day booking is recorded under.
func FullDayCategory(st pricing.ServiceType) appointment.TimeCategory {
	if st == pricing.ServiceOvernight {
		return appointment.Evening
	}
	return appointment.Morning
}

// DateOf truncates t to midnight of its calendar day, keeping its location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
