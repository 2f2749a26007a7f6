package appointment

import "time"

// TimeCategory is a visit window within a day.
type TimeCategory string

const (
	Morning TimeCategory = "morning"
	Midday  TimeCategory = "midday"
	Evening TimeCategory = "evening"
)

var TimeCategories = []TimeCategory{Morning, Midday, Evening}

func NewTimeCategory(s string) (TimeCategory, error) {
	c := TimeCategory(s)
	if !c.IsValid() {
		return "", ErrInvalidTimeCategory
	}
	return c, nil
}

func (c TimeCategory) String() string {
	return string(c)
}

func (c TimeCategory) IsValid() bool {
	switch c {
	case Morning, Midday, Evening:
		return true
	default:
		return false
	}
}

// StartHour is the local hour a visit in this window is booked at.
func (c TimeCategory) StartHour() int {
	switch c {
	case Morning:
		return 9
	case Midday:
		return 12
	case Evening:
		return 16
	default:
		return 0
	}
}

func (c TimeCategory) Label() string {
	switch c {
	case Morning:
		return "9am - 12pm"
	case Midday:
		return "12pm - 4pm"
	case Evening:
		return "4pm - 8pm"
	default:
		return ""
	}
}

// At returns the start of the window on the calendar day of date, in date's location.
func (c TimeCategory) At(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.StartHour(), 0, 0, 0, date.Location())
}
