package session

import (
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/draft"
	"petsitter-booking/internal/domain/pricing"
	"petsitter-booking/internal/domain/view"

	"github.com/google/uuid"
)

// Selection is what the customer is currently pricing on the form.
type Selection struct {
	ServiceType     pricing.ServiceType
	Pets            int
	DurationMinutes int
	Date            time.Time
}

// SelectionUpdate carries only the fields the customer changed.
type SelectionUpdate struct {
	ServiceType     *pricing.ServiceType
	Pets            *int
	DurationMinutes *int
	Date            *time.Time
}

// Session is one customer's working state between page loads.
type Session struct {
	id        uuid.UUID
	catalog   *pricing.Catalog
	view      *view.Coordinator
	selection Selection
	quote     pricing.Quote
	contact   appointment.Customer
	draft     *draft.Draft
	createdAt time.Time
	updatedAt time.Time
}

// New starts on the form with Drop-In for one pet at its shortest visit, dated today.
func New(id uuid.UUID, catalog *pricing.Catalog, now time.Time) *Session {
	if id == uuid.Nil {
		id = uuid.New()
	}
	s := &Session{
		id:        id,
		catalog:   catalog,
		view:      view.NewCoordinator(),
		draft:     draft.New(),
		createdAt: now,
		updatedAt: now,
	}
	s.applySelection(Selection{
		ServiceType: pricing.ServiceDropIn,
		Pets:        1,
		Date:        draft.DateOf(now),
	})
	return s
}

func (s *Session) ID() uuid.UUID                 { return s.id }
func (s *Session) View() view.State              { return s.view.State() }
func (s *Session) Selection() Selection          { return s.selection }
func (s *Session) Quote() pricing.Quote          { return s.quote }
func (s *Session) Contact() appointment.Customer { return s.contact }
func (s *Session) Draft() *draft.Draft           { return s.draft.Clone() }
func (s *Session) CreatedAt() time.Time          { return s.createdAt }
func (s *Session) UpdatedAt() time.Time          { return s.updatedAt }

func (s *Session) PetOptions() []int {
	return s.catalog.PetOptions(s.selection.ServiceType)
}

func (s *Session) DurationOptions() []int {
	return s.catalog.DurationOptions(s.selection.ServiceType, s.selection.Pets)
}

func (s *Session) Touch(now time.Time) {
	s.updatedAt = now
}

func (s *Session) UpdateSelection(u SelectionUpdate) error {
	next := s.selection
	if u.ServiceType != nil {
		if !u.ServiceType.IsValid() {
			return pricing.ErrUnknownServiceType
		}
		next.ServiceType = *u.ServiceType
	}
	if u.Pets != nil {
		next.Pets = *u.Pets
	}
	if u.DurationMinutes != nil {
		next.DurationMinutes = *u.DurationMinutes
	}
	if u.Date != nil {
		next.Date = draft.DateOf(*u.Date)
	}
	s.applySelection(next)
	return nil
}

func (s *Session) applySelection(sel Selection) {
	q := s.catalog.Resolve(pricing.Selection{
		ServiceType:     sel.ServiceType,
		Pets:            sel.Pets,
		DurationMinutes: sel.DurationMinutes,
	})
	s.quote = q
	s.selection = Selection{
		ServiceType:     q.ServiceType,
		Pets:            q.Pets,
		DurationMinutes: q.DurationMinutes,
		Date:            sel.Date,
	}
}

func (s *Session) SetContact(c appointment.Customer) {
	s.contact = c
}

func (s *Session) ToggleTimeSlot(category appointment.TimeCategory) (draft.ToggleResult, error) {
	return s.draft.ToggleTimeSlot(s.selection.Date, category, s.quote)
}

func (s *Session) ToggleFullDay() (draft.ToggleResult, error) {
	return s.draft.ToggleFullDay(s.selection.Date, s.quote)
}

func (s *Session) RemoveSlot(id uuid.UUID) bool {
	return s.draft.Remove(id)
}

// BuildRequest validates the form and draft without changing the session.
func (s *Session) BuildRequest(submittedAt time.Time) (*appointment.Request, error) {
	if err := s.view.CanSubmit(); err != nil {
		return nil, err
	}
	missing := s.contact.MissingFields()
	if s.draft.IsEmpty() {
		missing = append(missing, FieldSlots)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	return appointment.NewRequest(uuid.Nil, s.contact, s.draft.AppointmentSlots(), submittedAt)
}

// Submitted clears the form once its request has been stored.
func (s *Session) Submitted() error {
	if err := s.view.Submitted(); err != nil {
		return err
	}
	s.draft.Clear()
	s.contact = appointment.Customer{}
	return nil
}

func (s *Session) Acknowledge() {
	s.view.Acknowledge()
}

func (s *Session) SelectTab(t view.Tab) error {
	return s.view.SelectTab(t)
}

func (s *Session) Clone() *Session {
	cp := *s
	v := *s.view
	cp.view = &v
	cp.draft = s.draft.Clone()
	return &cp
}
