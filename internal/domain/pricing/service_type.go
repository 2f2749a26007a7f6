package pricing

import "petsitter-booking/internal/pkg/errs"

var ErrUnknownServiceType = errs.New("unknown service type")

type ServiceType string

const (
	ServiceDropIn         ServiceType = "drop_in"
	ServiceOvernight      ServiceType = "overnight"
	ServiceDaytimeCare    ServiceType = "daytime_care"
	ServiceTwentyFourHour ServiceType = "24_hour_care"
)

// ServiceTypes lists every service in display order.
var ServiceTypes = []ServiceType{
	ServiceDropIn,
	ServiceOvernight,
	ServiceDaytimeCare,
	ServiceTwentyFourHour,
}

type RuleKind string

const (
	RuleDurationTable RuleKind = "duration_table"
	RulePetTable      RuleKind = "pet_table"
	RulePerPetFormula RuleKind = "per_pet_formula"
)

func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	if !st.IsValid() {
		return "", ErrUnknownServiceType
	}
	return st, nil
}

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceDropIn, ServiceOvernight, ServiceDaytimeCare, ServiceTwentyFourHour:
		return true
	default:
		return false
	}
}

func (s ServiceType) Label() string {
	switch s {
	case ServiceDropIn:
		return "Drop-In"
	case ServiceOvernight:
		return "Overnight (8pm - 8am)"
	case ServiceDaytimeCare:
		return "Daytime Care"
	case ServiceTwentyFourHour:
		return "24-Hour Care"
	default:
		return string(s)
	}
}

// RuleKind reports which pricing strategy the service is priced with.
func (s ServiceType) RuleKind() RuleKind {
	switch s {
	case ServiceDropIn:
		return RuleDurationTable
	case ServiceOvernight, ServiceDaytimeCare:
		return RulePetTable
	case ServiceTwentyFourHour:
		return RulePerPetFormula
	default:
		return ""
	}
}

// IsFullDay is true for services booked once per date rather than per time window.
func (s ServiceType) IsFullDay() bool {
	return s.IsValid() && s.RuleKind() != RuleDurationTable
}
