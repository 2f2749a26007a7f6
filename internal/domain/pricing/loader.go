package pricing

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"petsitter-booking/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

type catalogDoc struct {
	Services map[string]serviceDoc `yaml:"services"`
}

type serviceDoc struct {
	Durations []durationDoc `yaml:"durations"`
	Pets      []petDoc      `yaml:"pets"`
	Formula   *formulaDoc   `yaml:"formula"`
}

type durationDoc struct {
	Pets       int   `yaml:"pets"`
	Minutes    int   `yaml:"minutes"`
	PriceCents int64 `yaml:"price_cents"`
}

type petDoc struct {
	Pets       int   `yaml:"pets"`
	PriceCents int64 `yaml:"price_cents"`
}

type formulaDoc struct {
	BaseCents      int64 `yaml:"base_cents"`
	IncrementCents int64 `yaml:"increment_cents"`
	MinPets        int   `yaml:"min_pets"`
	MaxPets        int   `yaml:"max_pets"`
}

func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "open pricing catalog")
	}
	defer f.Close()
	return LoadCatalog(f)
}

func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.Wrap(err, "decode pricing catalog")
	}

	rules := make(map[ServiceType]Rule, len(doc.Services))
	for key, svc := range doc.Services {
		st, err := ParseServiceType(key)
		if err != nil {
			return nil, errs.Wrap(err, key)
		}
		rule, err := buildRule(st, svc)
		if err != nil {
			return nil, errs.Wrap(err, key)
		}
		rules[st] = rule
	}
	return NewCatalog(rules)
}

func buildRule(st ServiceType, svc serviceDoc) (Rule, error) {
	switch st.RuleKind() {
	case RuleDurationTable:
		entries := make([]DurationEntry, 0, len(svc.Durations))
		for _, d := range svc.Durations {
			entries = append(entries, DurationEntry{Pets: d.Pets, Minutes: d.Minutes, Price: NewMoney(d.PriceCents)})
		}
		return NewDurationTable(entries)
	case RulePetTable:
		entries := make([]PetEntry, 0, len(svc.Pets))
		for _, p := range svc.Pets {
			entries = append(entries, PetEntry{Pets: p.Pets, Price: NewMoney(p.PriceCents)})
		}
		return NewPetTable(entries)
	case RulePerPetFormula:
		if svc.Formula == nil {
			return nil, errs.Wrap(ErrInvalidRule, "formula section is required")
		}
		f := svc.Formula
		return NewPerPetFormula(NewMoney(f.BaseCents), NewMoney(f.IncrementCents), f.MinPets, f.MaxPets)
	default:
		return nil, errs.Wrap(ErrInvalidRule, fmt.Sprintf("no rule kind for %s", st))
	}
}
