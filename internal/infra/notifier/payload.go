package notifier

import (
	"encoding/json"
	"time"

	"petsitter-booking/internal/domain/appointment"

	"github.com/google/uuid"
)

const EventAppointmentRequested = "appointment.requested"

type AddressPayload struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type SlotPayload struct {
	ID              uuid.UUID `json:"id"`
	DateTime        time.Time `json:"dateTime"`
	Status          string    `json:"status"`
	ServiceType     string    `json:"serviceType"`
	NumberOfPets    int       `json:"numberOfPets"`
	ServiceDuration int       `json:"serviceDuration,omitempty"`
	Price           string    `json:"price"`
}

// Payload is the full request as sent to the sitter.
type Payload struct {
	ID              uuid.UUID      `json:"id"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress AddressPayload `json:"customerAddress"`
	Slots           []SlotPayload  `json:"slots"`
	SubmittedAt     time.Time      `json:"submittedAt"`
	Total           string         `json:"total"`
}

func NewPayload(req *appointment.Request) Payload {
	c := req.Customer()
	p := Payload{
		ID:            req.ID(),
		CustomerName:  c.Name,
		CustomerEmail: c.Email,
		CustomerPhone: c.Phone,
		CustomerAddress: AddressPayload{
			Street: c.Address.Street,
			City:   c.Address.City,
			State:  c.Address.State,
			Zip:    c.Address.Zip,
		},
		SubmittedAt: req.SubmittedAt(),
		Total:       req.Total().String(),
	}
	for _, s := range req.Slots() {
		p.Slots = append(p.Slots, SlotPayload{
			ID:              s.ID(),
			DateTime:        s.DateTime(),
			Status:          s.Status().String(),
			ServiceType:     s.ServiceType().String(),
			NumberOfPets:    s.NumberOfPets(),
			ServiceDuration: s.DurationMinutes(),
			Price:           s.Price().String(),
		})
	}
	return p
}

func encode(req *appointment.Request) ([]byte, error) {
	return json.Marshal(NewPayload(req))
}
