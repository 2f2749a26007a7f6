package appointment

import (
	"time"

	"petsitter-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type Slot struct {
	id              uuid.UUID
	dateTime        time.Time
	status          Status
	serviceType     pricing.ServiceType
	numberOfPets    int
	durationMinutes int
	price           pricing.Money
}

// NewSlot creates a pending slot. durationMinutes is 0 for services not priced by duration.
func NewSlot(id uuid.UUID, dateTime time.Time, serviceType pricing.ServiceType, numberOfPets, durationMinutes int, price pricing.Money) Slot {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Slot{
		id:              id,
		dateTime:        dateTime,
		status:          StatusPending,
		serviceType:     serviceType,
		numberOfPets:    numberOfPets,
		durationMinutes: durationMinutes,
		price:           price,
	}
}

func (s Slot) ID() uuid.UUID                    { return s.id }
func (s Slot) DateTime() time.Time              { return s.dateTime }
func (s Slot) Status() Status                   { return s.status }
func (s Slot) ServiceType() pricing.ServiceType { return s.serviceType }
func (s Slot) NumberOfPets() int                { return s.numberOfPets }
func (s Slot) DurationMinutes() int             { return s.durationMinutes }
func (s Slot) Price() pricing.Money             { return s.price }
func (s Slot) IsPending() bool                  { return s.status == StatusPending }
