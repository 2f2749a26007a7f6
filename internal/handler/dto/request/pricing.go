package request

import (
	"petsitter-booking/internal/pkg/patch"
	"petsitter-booking/internal/usecase/queries"
)

type QuoteQuery struct {
	Service  string `form:"service" binding:"required"`
	Pets     *int   `form:"pets"`
	Duration *int   `form:"duration"`
}

func (q *QuoteQuery) ToInput() queries.QuoteInput {
	return queries.QuoteInput{
		ServiceType:     q.Service,
		NumberOfPets:    patch.Positive(q.Pets, 1),
		DurationMinutes: patch.Coalesce(q.Duration, 0),
	}
}
