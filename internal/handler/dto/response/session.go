package response

import (
	"time"

	"petsitter-booking/internal/usecase/queries"
)

type SelectionResponse struct {
	ServiceType     string `json:"serviceType"`
	ServiceLabel    string `json:"serviceLabel"`
	NumberOfPets    int    `json:"numberOfPets"`
	DurationMinutes int    `json:"duration"`
	Date            string `json:"date"`
	FullDay         bool   `json:"fullDay"`
}

type ContactResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type DraftSlotResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Category        string    `json:"category"`
	TimeLabel       string    `json:"timeLabel"`
	DateTime        time.Time `json:"dateTime"`
	ServiceType     string    `json:"serviceType"`
	ServiceLabel    string    `json:"serviceLabel"`
	NumberOfPets    int       `json:"numberOfPets"`
	DurationMinutes int       `json:"duration"`
	Price           string    `json:"price"`
}

type SessionResponse struct {
	ID              string              `json:"id"`
	View            string              `json:"view"`
	Selection       SelectionResponse   `json:"selection"`
	PetOptions      []int               `json:"petOptions"`
	DurationOptions []int               `json:"durationOptions"`
	Price           *string             `json:"price"`
	Contact         ContactResponse     `json:"contact"`
	DraftSlots      []DraftSlotResponse `json:"draftSlots"`
	DraftTotal      string              `json:"draftTotal"`
	DatesWithSlots  []string            `json:"datesWithSlots"`
	Badge           bool                `json:"badge"`
	UpdatedUnix     int64               `json:"updatedAt"`
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	res := &SessionResponse{}
	copyFrom(res, v)
	res.UpdatedUnix = v.UpdatedAt.Unix()
	if res.DraftSlots == nil {
		res.DraftSlots = []DraftSlotResponse{}
	}
	return res
}

type ToggleResponse struct {
	Result  string           `json:"result"`
	Session *SessionResponse `json:"session"`
}
