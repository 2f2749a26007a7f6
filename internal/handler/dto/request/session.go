package request

import (
	"petsitter-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type UpdateSelectionRequest struct {
	ServiceType  *string `json:"serviceType" binding:"omitempty,oneof=drop_in overnight daytime_care 24_hour_care"`
	NumberOfPets *int    `json:"numberOfPets" binding:"omitempty,min=1"`
	Duration     *int    `json:"duration" binding:"omitempty,min=0"`
	Date         *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateSelectionRequest) ToInput() commands.SelectionInput {
	return commands.SelectionInput{
		ServiceType:     r.ServiceType,
		NumberOfPets:    r.NumberOfPets,
		DurationMinutes: r.Duration,
		Date:            r.Date,
	}
}

// Contact fields may be saved empty; completeness is checked on submit.
type UpdateContactRequest struct {
	Name   string `json:"name" binding:"max=200"`
	Email  string `json:"email" binding:"omitempty,max=254"`
	Phone  string `json:"phone" binding:"max=50"`
	Street string `json:"street" binding:"max=200"`
	City   string `json:"city" binding:"max=100"`
	State  string `json:"state" binding:"max=100"`
	Zip    string `json:"zip" binding:"max=20"`
}

func (r *UpdateContactRequest) ToInput() (commands.ContactInput, error) {
	var in commands.ContactInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.ContactInput{}, err
	}
	return in, nil
}

type ToggleTimeSlotRequest struct {
	Category string `json:"category" binding:"required,oneof=morning midday evening"`
}

type SelectTabRequest struct {
	Tab string `json:"tab" binding:"required,oneof=customer admin"`
}
