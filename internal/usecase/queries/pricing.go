package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"petsitter-booking/internal/domain/pricing"
)

type QuoteInput struct {
	ServiceType     string
	NumberOfPets    int
	DurationMinutes int
}

type PricingQueries interface {
	Services() []ServiceView
	Quote(in QuoteInput) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	catalog *pricing.Catalog
}

func NewPricingQueries(catalog *pricing.Catalog) PricingQueries {
	return &pricingQueriesImpl{catalog: catalog}
}

func (q *pricingQueriesImpl) Services() []ServiceView {
	infos := q.catalog.Services()
	out := make([]ServiceView, 0, len(infos))
	for _, info := range infos {
		out = append(out, ServiceView{
			Type:       info.Type.String(),
			Label:      info.Label,
			RuleKind:   string(info.RuleKind),
			FullDay:    info.FullDay,
			PetOptions: info.PetOptions,
			Note:       info.Note,
		})
	}
	return out
}

func (q *pricingQueriesImpl) Quote(in QuoteInput) (*QuoteView, error) {
	st, err := pricing.ParseServiceType(in.ServiceType)
	if err != nil {
		return nil, err
	}
	quote := q.catalog.Resolve(pricing.Selection{
		ServiceType:     st,
		Pets:            in.NumberOfPets,
		DurationMinutes: in.DurationMinutes,
	})
	return &QuoteView{
		ServiceType:     quote.ServiceType.String(),
		NumberOfPets:    quote.Pets,
		DurationMinutes: quote.DurationMinutes,
		Price:           priceOf(quote),
		PetOptions:      q.catalog.PetOptions(quote.ServiceType),
		DurationOptions: nonNil(q.catalog.DurationOptions(quote.ServiceType, quote.Pets)),
	}, nil
}

func priceOf(q pricing.Quote) *string {
	if !q.Available {
		return nil
	}
	s := q.Price.String()
	return &s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
