package pricing

import (
	"fmt"
	"slices"

	"petsitter-booking/internal/pkg/errs"
)

var ErrIncompleteCatalog = errs.New("pricing catalog is incomplete")

// Catalog maps every service type to its pricing rule. It is built once and never mutated.
type Catalog struct {
	rules map[ServiceType]Rule
}

func NewCatalog(rules map[ServiceType]Rule) (*Catalog, error) {
	for _, st := range ServiceTypes {
		if rules[st] == nil {
			return nil, errs.Wrap(ErrIncompleteCatalog, fmt.Sprintf("no rule for %s", st))
		}
	}
	for st := range rules {
		if !st.IsValid() {
			return nil, errs.Wrap(ErrUnknownServiceType, string(st))
		}
	}
	cp := make(map[ServiceType]Rule, len(rules))
	for k, v := range rules {
		cp[k] = v
	}
	return &Catalog{rules: cp}, nil
}

// Price returns false when no price is available for the combination.
func (c *Catalog) Price(st ServiceType, pets, durationMin int) (Money, bool) {
	r, ok := c.rules[st]
	if !ok {
		return Money{}, false
	}
	return r.Price(pets, durationMin)
}

func (c *Catalog) PetOptions(st ServiceType) []int {
	r, ok := c.rules[st]
	if !ok {
		return nil
	}
	return r.PetOptions()
}

// DurationOptions is empty for every service that is not priced by duration.
func (c *Catalog) DurationOptions(st ServiceType, pets int) []int {
	r, ok := c.rules[st]
	if !ok || st.RuleKind() != RuleDurationTable {
		return nil
	}
	return r.DurationOptions(pets)
}

type Selection struct {
	ServiceType     ServiceType
	Pets            int
	DurationMinutes int
}

type Quote struct {
	Selection
	Price     Money
	Available bool
}

// Resolve snaps the selection onto offered options and prices it.
// A pet count that is not offered becomes the first offered one, likewise the duration.
func (c *Catalog) Resolve(sel Selection) Quote {
	if _, ok := c.rules[sel.ServiceType]; !ok {
		return Quote{Selection: sel}
	}

	petOpts := c.PetOptions(sel.ServiceType)
	if !slices.Contains(petOpts, sel.Pets) {
		sel.Pets = 1
		if len(petOpts) > 0 {
			sel.Pets = petOpts[0]
		}
	}

	switch sel.ServiceType.RuleKind() {
	case RuleDurationTable:
		durOpts := c.DurationOptions(sel.ServiceType, sel.Pets)
		if !slices.Contains(durOpts, sel.DurationMinutes) {
			sel.DurationMinutes = 0
			if len(durOpts) > 0 {
				sel.DurationMinutes = durOpts[0]
			}
		}
	case RulePetTable, RulePerPetFormula:
		sel.DurationMinutes = 0
	}

	price, ok := c.Price(sel.ServiceType, sel.Pets, sel.DurationMinutes)
	return Quote{Selection: sel, Price: price, Available: ok}
}

type ServiceInfo struct {
	Type       ServiceType
	Label      string
	RuleKind   RuleKind
	FullDay    bool
	PetOptions []int
	Note       string
}

func (c *Catalog) Services() []ServiceInfo {
	out := make([]ServiceInfo, 0, len(ServiceTypes))
	for _, st := range ServiceTypes {
		r := c.rules[st]
		out = append(out, ServiceInfo{
			Type:       st,
			Label:      st.Label(),
			RuleKind:   st.RuleKind(),
			FullDay:    st.IsFullDay(),
			PetOptions: r.PetOptions(),
			Note:       r.Note(),
		})
	}
	return out
}
