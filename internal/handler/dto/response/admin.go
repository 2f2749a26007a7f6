package response

import (
	"time"

	"petsitter-booking/internal/usecase/queries"
)

type AddressResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type SlotResponse struct {
	ID              string    `json:"id"`
	DateTime        time.Time `json:"dateTime"`
	Status          string    `json:"status"`
	ServiceType     string    `json:"serviceType"`
	ServiceLabel    string    `json:"serviceLabel"`
	NumberOfPets    int       `json:"numberOfPets"`
	DurationMinutes int       `json:"duration"`
	Price           string    `json:"price"`
}

type RequestResponse struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress AddressResponse `json:"customerAddress"`
	Slots           []SlotResponse  `json:"slots"`
	SubmittedAt     time.Time       `json:"submittedAt"`
	Total           string          `json:"total"`
	AllPending      bool            `json:"allPending"`
	HasPending      bool            `json:"hasPending"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	res := &RequestResponse{}
	copyFrom(res, v)
	return res
}

func FromRequestList(vs []*queries.RequestView) []*RequestResponse {
	res := make([]*RequestResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRequestView(v)
	}
	return res
}

type BadgeResponse struct {
	Unread bool `json:"unread"`
}

func FromBadgeView(v *queries.BadgeView) *BadgeResponse {
	return &BadgeResponse{Unread: v.Unread}
}
