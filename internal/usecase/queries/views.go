package queries

import (
	"time"

	"github.com/google/uuid"
)

// ServiceView describes one bookable service and how it is priced
type ServiceView struct {
	Type       string `json:"type"`
	Label      string `json:"label"`
	RuleKind   string `json:"ruleKind"`
	FullDay    bool   `json:"fullDay"`
	PetOptions []int  `json:"petOptions"`
	Note       string `json:"note,omitempty"`
}

// QuoteView is a normalised selection and its price; Price is nil when unavailable
type QuoteView struct {
	ServiceType     string  `json:"serviceType"`
	NumberOfPets    int     `json:"numberOfPets"`
	DurationMinutes int     `json:"duration"`
	Price           *string `json:"price"`
	PetOptions      []int   `json:"petOptions"`
	DurationOptions []int   `json:"durationOptions"`
}

type AddressView struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type SlotView struct {
	ID              uuid.UUID `json:"id"`
	DateTime        time.Time `json:"dateTime"`
	Status          string    `json:"status"`
	ServiceType     string    `json:"serviceType"`
	ServiceLabel    string    `json:"serviceLabel"`
	NumberOfPets    int       `json:"numberOfPets"`
	DurationMinutes int       `json:"duration"`
	Price           string    `json:"price"`
}

// RequestView is the admin projection of one appointment request
type RequestView struct {
	ID              uuid.UUID   `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress AddressView `json:"customerAddress"`
	Slots           []SlotView  `json:"slots"`
	SubmittedAt     time.Time   `json:"submittedAt"`
	Total           string      `json:"total"`
	AllPending      bool        `json:"allPending"`
	HasPending      bool        `json:"hasPending"`
}

type BadgeView struct {
	Unread bool `json:"unread"`
}

type SelectionView struct {
	ServiceType     string `json:"serviceType"`
	ServiceLabel    string `json:"serviceLabel"`
	NumberOfPets    int    `json:"numberOfPets"`
	DurationMinutes int    `json:"duration"`
	Date            string `json:"date"`
	FullDay         bool   `json:"fullDay"`
}

type ContactView struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type DraftSlotView struct {
	ID              uuid.UUID `json:"id"`
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

// SessionView is everything the customer screen needs in one read
type SessionView struct {
	ID              uuid.UUID       `json:"id"`
	View            string          `json:"view"`
	Selection       SelectionView   `json:"selection"`
	PetOptions      []int           `json:"petOptions"`
	DurationOptions []int           `json:"durationOptions"`
	Price           *string         `json:"price"`
	Contact         ContactView     `json:"contact"`
	DraftSlots      []DraftSlotView `json:"draftSlots"`
	DraftTotal      string          `json:"draftTotal"`
	DatesWithSlots  []string        `json:"datesWithSlots"`
	Badge           bool            `json:"badge"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
