package draft

import (
	"slices"
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/pricing"
	"petsitter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTimeSlotService = errs.New("time slots are only offered for duration-priced services")
	ErrFullDayService  = errs.New("full-day bookings are only offered for full-day services")
)

type ToggleResult int

const (
	Unchanged ToggleResult = iota
	Added
	Removed
)

func (r ToggleResult) String() string {
	switch r {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// Draft is the ordered list of slots a customer is building before submission.
// Slots stay sorted ascending by date; slots on the same date keep insertion order.
type Draft struct {
	slots []Slot
}

func New() *Draft {
	return &Draft{}
}

// ToggleTimeSlot removes any slot on the same date and category, whatever its service type.
// Otherwise it adds a slot priced by quote; an unpriceable quote leaves the draft as is.
func (d *Draft) ToggleTimeSlot(date time.Time, category appointment.TimeCategory, q pricing.Quote) (ToggleResult, error) {
	if !category.IsValid() {
		return Unchanged, appointment.ErrInvalidTimeCategory
	}
	if q.ServiceType.IsFullDay() || !q.ServiceType.IsValid() {
		return Unchanged, ErrTimeSlotService
	}
	match := func(s Slot) bool { return sameDay(s.Date, date) && s.Category == category }
	return d.toggle(match, date, category, q), nil
}

func (d *Draft) ToggleFullDay(date time.Time, q pricing.Quote) (ToggleResult, error) {
	if !q.ServiceType.IsFullDay() {
		return Unchanged, ErrFullDayService
	}
	match := func(s Slot) bool { return sameDay(s.Date, date) && s.ServiceType == q.ServiceType }
	return d.toggle(match, date, FullDayCategory(q.ServiceType), q), nil
}

func (d *Draft) toggle(match func(Slot) bool, date time.Time, category appointment.TimeCategory, q pricing.Quote) ToggleResult {
	if i := slices.IndexFunc(d.slots, match); i >= 0 {
		d.slots = slices.Delete(d.slots, i, i+1)
		return Removed
	}
	if !q.Available {
		return Unchanged
	}
	d.slots = append(d.slots, Slot{
		ID:              uuid.New(),
		Date:            DateOf(date),
		Category:        category,
		ServiceType:     q.ServiceType,
		Pets:            q.Pets,
		DurationMinutes: q.DurationMinutes,
		Price:           q.Price,
	})
	slices.SortStableFunc(d.slots, func(a, b Slot) int { return a.Date.Compare(b.Date) })
	return Added
}

// Remove reports whether a slot was removed. Unknown ids are ignored.
func (d *Draft) Remove(id uuid.UUID) bool {
	n := len(d.slots)
	d.slots = slices.DeleteFunc(d.slots, func(s Slot) bool { return s.ID == id })
	return len(d.slots) != n
}

func (d *Draft) Total() pricing.Money {
	var total pricing.Money
	for _, s := range d.slots {
		total = total.Add(s.Price)
	}
	return total
}

func (d *Draft) Slots() []Slot {
	return slices.Clone(d.slots)
}

func (d *Draft) Len() int {
	return len(d.slots)
}

func (d *Draft) IsEmpty() bool {
	return len(d.slots) == 0
}

// DatesWithSlots returns each calendar day holding at least one slot, ascending.
func (d *Draft) DatesWithSlots() []time.Time {
	out := make([]time.Time, 0, len(d.slots))
	for _, s := range d.slots {
		if len(out) > 0 && sameDay(out[len(out)-1], s.Date) {
			continue
		}
		out = append(out, s.Date)
	}
	return out
}

func (d *Draft) AppointmentSlots() []appointment.Slot {
	out := make([]appointment.Slot, 0, len(d.slots))
	for _, s := range d.slots {
		out = append(out, s.ToAppointment())
	}
	return out
}

func (d *Draft) Clear() {
	d.slots = nil
}

func (d *Draft) Clone() *Draft {
	return &Draft{slots: slices.Clone(d.slots)}
}
