package pricing

import (
	"fmt"
	"slices"

	"petsitter-booking/internal/pkg/errs"
)

var ErrInvalidRule = errs.New("invalid pricing rule")

// Rule prices one service type. Price reports false when the combination has no price.
type Rule interface {
	Price(pets, durationMin int) (Money, bool)
	PetOptions() []int
	DurationOptions(pets int) []int
	Note() string
}

type DurationEntry struct {
	Pets    int
	Minutes int
	Price   Money
}

type PetEntry struct {
	Pets  int
	Price Money
}

type durationTable struct {
	entries []DurationEntry
}

func NewDurationTable(entries []DurationEntry) (Rule, error) {
	if len(entries) == 0 {
		return nil, errs.Wrap(ErrInvalidRule, "duration table has no entries")
	}
	seen := make(map[[2]int]struct{}, len(entries))
	for _, e := range entries {
		if e.Pets < 1 || e.Minutes < 1 || e.Price.Cents() < 0 {
			return nil, errs.Wrap(ErrInvalidRule, fmt.Sprintf("bad duration entry %+v", e))
		}
		k := [2]int{e.Pets, e.Minutes}
		if _, dup := seen[k]; dup {
			return nil, errs.Wrap(ErrInvalidRule, fmt.Sprintf("duplicate entry for %d pets / %d min", e.Pets, e.Minutes))
		}
		seen[k] = struct{}{}
	}
	return &durationTable{entries: slices.Clone(entries)}, nil
}

func (t *durationTable) Price(pets, durationMin int) (Money, bool) {
	for _, e := range t.entries {
		if e.Pets == pets && e.Minutes == durationMin {
			return e.Price, true
		}
	}
	// fall back to the shortest duration offered for this pet count
	opts := t.DurationOptions(pets)
	if len(opts) == 0 {
		return Money{}, false
	}
	for _, e := range t.entries {
		if e.Pets == pets && e.Minutes == opts[0] {
			return e.Price, true
		}
	}
	return Money{}, false
}

func (t *durationTable) PetOptions() []int {
	pets := make([]int, 0, len(t.entries))
	for _, e := range t.entries {
		pets = append(pets, e.Pets)
	}
	return sortedDistinct(pets)
}

func (t *durationTable) DurationOptions(pets int) []int {
	var mins []int
	for _, e := range t.entries {
		if e.Pets == pets {
			mins = append(mins, e.Minutes)
		}
	}
	return sortedDistinct(mins)
}

func (t *durationTable) Note() string { return "" }

type petTable struct {
	entries []PetEntry
}

func NewPetTable(entries []PetEntry) (Rule, error) {
	if len(entries) == 0 {
		return nil, errs.Wrap(ErrInvalidRule, "pet table has no entries")
	}
	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if e.Pets < 1 || e.Price.Cents() < 0 {
			return nil, errs.Wrap(ErrInvalidRule, fmt.Sprintf("bad pet entry %+v", e))
		}
		if _, dup := seen[e.Pets]; dup {
			return nil, errs.Wrap(ErrInvalidRule, fmt.Sprintf("duplicate entry for %d pets", e.Pets))
		}
		seen[e.Pets] = struct{}{}
	}
	return &petTable{entries: slices.Clone(entries)}, nil
}

func (t *petTable) Price(pets, _ int) (Money, bool) {
	for _, e := range t.entries {
		if e.Pets == pets {
			return e.Price, true
		}
	}
	return Money{}, false
}

func (t *petTable) PetOptions() []int {
	pets := make([]int, 0, len(t.entries))
	for _, e := range t.entries {
		pets = append(pets, e.Pets)
	}
	return sortedDistinct(pets)
}

func (t *petTable) DurationOptions(int) []int { return nil }

func (t *petTable) Note() string { return "" }

// perPetFormula prices base + (pets-1)*increment instead of looking up a table.
type perPetFormula struct {
	base      Money
	increment Money
	minPets   int
	maxPets   int
}

func NewPerPetFormula(base, increment Money, minPets, maxPets int) (Rule, error) {
	if minPets < 1 || maxPets < minPets {
		return nil, errs.Wrap(ErrInvalidRule, fmt.Sprintf("bad pet range %d..%d", minPets, maxPets))
	}
	if base.Cents() < 0 || increment.Cents() < 0 {
		return nil, errs.Wrap(ErrInvalidRule, "formula amounts cannot be negative")
	}
	return &perPetFormula{base: base, increment: increment, minPets: minPets, maxPets: maxPets}, nil
}

func (f *perPetFormula) Price(pets, _ int) (Money, bool) {
	if pets < f.minPets || pets > f.maxPets {
		return Money{}, false
	}
	return f.base.Add(f.increment.Mul(int64(pets - 1))), true
}

func (f *perPetFormula) PetOptions() []int {
	opts := make([]int, 0, f.maxPets-f.minPets+1)
	for n := f.minPets; n <= f.maxPets; n++ {
		opts = append(opts, n)
	}
	return opts
}

func (f *perPetFormula) DurationOptions(int) []int { return nil }

func (f *perPetFormula) Note() string {
	return fmt.Sprintf("The price starts at $%s for one pet and increases by $%s for each additional pet.",
		f.base, f.increment)
}

func sortedDistinct(in []int) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
