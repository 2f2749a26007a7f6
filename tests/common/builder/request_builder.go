//go:build unit || e2e

package builder

import (
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type SlotSpec struct {
	ID              uuid.UUID
	DateTime        time.Time
	ServiceType     pricing.ServiceType
	Pets            int
	DurationMinutes int
	Price           pricing.Money
}

type RequestBuilder struct {
	ID          uuid.UUID
	Customer    appointment.Customer
	Slots       []SlotSpec
	SubmittedAt time.Time
}

func NewRequestBuilder() *RequestBuilder {
	now := time.Now()
	visit := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, time.Local).AddDate(0, 0, 7)
	return &RequestBuilder{
		Customer: DefaultCustomer(),
		Slots: []SlotSpec{{
			DateTime:        visit,
			ServiceType:     pricing.ServiceDropIn,
			Pets:            2,
			DurationMinutes: 45,
			Price:           pricing.Dollars(35),
		}},
		SubmittedAt: now,
	}
}

func DefaultCustomer() appointment.Customer {
	return appointment.Customer{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "555-0100",
		Address: appointment.Address{
			Street: "1 Main St",
			City:   "Springfield",
			State:  "IL",
			Zip:    "62701",
		},
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RequestBuilder) BuildDomain() (*appointment.Request, error) {
	slots := make([]appointment.Slot, 0, len(b.Slots))
	for _, s := range b.Slots {
		slots = append(slots, appointment.NewSlot(s.ID, s.DateTime, s.ServiceType, s.Pets, s.DurationMinutes, s.Price))
	}
	return appointment.NewRequest(b.ID, b.Customer, slots, b.SubmittedAt)
}

func (b *RequestBuilder) MustBuildDomain() *appointment.Request {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

// Fluent builder methods
func (b *RequestBuilder) WithID(id uuid.UUID) *RequestBuilder {
	b.ID = id
	return b
}

func (b *RequestBuilder) WithCustomerName(name string) *RequestBuilder {
	b.Customer.Name = name
	return b
}

func (b *RequestBuilder) WithSubmittedAt(t time.Time) *RequestBuilder {
	b.SubmittedAt = t
	return b
}

func (b *RequestBuilder) WithoutSlots() *RequestBuilder {
	b.Slots = nil
	return b
}

func (b *RequestBuilder) AddSlot(s SlotSpec) *RequestBuilder {
	b.Slots = append(b.Slots, s)
	return b
}

func (b *RequestBuilder) AddOvernightSlot(at time.Time, pets int, price pricing.Money) *RequestBuilder {
	return b.AddSlot(SlotSpec{
		DateTime:    at,
		ServiceType: pricing.ServiceOvernight,
		Pets:        pets,
		Price:       price,
	})
}
