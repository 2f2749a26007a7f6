package response

import (
	"petsitter-booking/internal/usecase/queries"
)

type ServiceResponse struct {
	Type       string `json:"type"`
	Label      string `json:"label"`
	RuleKind   string `json:"ruleKind"`
	FullDay    bool   `json:"fullDay"`
	PetOptions []int  `json:"petOptions"`
	Note       string `json:"note,omitempty"`
}

func FromServiceViews(vs []queries.ServiceView) []ServiceResponse {
	res := make([]ServiceResponse, 0, len(vs))
	copyFrom(&res, &vs)
	return res
}

type QuoteResponse struct {
	ServiceType     string  `json:"serviceType"`
	NumberOfPets    int     `json:"numberOfPets"`
	DurationMinutes int     `json:"duration"`
	Price           *string `json:"price"`
	PetOptions      []int   `json:"petOptions"`
	DurationOptions []int   `json:"durationOptions"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	res := &QuoteResponse{}
	copyFrom(res, v)
	return res
}
