//go:build unit || e2e

package builder

import (
	"time"

	"petsitter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

func NewSessionView(id uuid.UUID) *queries.SessionView {
	price := "25.00"
	return &queries.SessionView{
		ID:   id,
		View: "customer_form",
		Selection: queries.SelectionView{
			ServiceType:     "drop_in",
			ServiceLabel:    "Drop-In",
			NumberOfPets:    1,
			DurationMinutes: 30,
			Date:            "2026-10-20",
		},
		PetOptions:      []int{1, 2, 3, 4, 5, 6},
		DurationOptions: []int{30, 45, 60},
		Price:           &price,
		DraftSlots:      []queries.DraftSlotView{},
		DraftTotal:      "0.00",
		DatesWithSlots:  []string{},
		UpdatedAt:       time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
	}
}

func NewRequestView(id uuid.UUID) *queries.RequestView {
	c := DefaultCustomer()
	return &queries.RequestView{
		ID:            id,
		CustomerName:  c.Name,
		CustomerEmail: c.Email,
		CustomerPhone: c.Phone,
		CustomerAddress: queries.AddressView{
			Street: c.Address.Street,
			City:   c.Address.City,
			State:  c.Address.State,
			Zip:    c.Address.Zip,
		},
		Slots: []queries.SlotView{{
			ID:              uuid.New(),
			DateTime:        time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
			Status:          "pending",
			ServiceType:     "drop_in",
			ServiceLabel:    "Drop-In",
			NumberOfPets:    2,
			DurationMinutes: 45,
			Price:           "35.00",
		}},
		SubmittedAt: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
		Total:       "35.00",
		AllPending:  true,
		HasPending:  true,
	}
}
