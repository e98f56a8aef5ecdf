package domain

import (
	"errors"
	"strings"
)

// Weekday identifies one of the seven fixed slots of a planner's schedule.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekdays lists every slot in display order, monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Display labels shown on the console (Portuguese, as trainers see them).
var weekdayLabels = map[Weekday]string{
	Monday:    "Segunda",
	Tuesday:   "Terça",
	Wednesday: "Quarta",
	Thursday:  "Quinta",
	Friday:    "Sexta",
	Saturday:  "Sábado",
	Sunday:    "Domingo",
}

// ParseWeekday accepts a weekday key in any letter case.
func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if !day.Valid() {
		return "", ErrInvalidWeekday
	}
	return day, nil
}

func (d Weekday) Valid() bool {
	_, ok := weekdayLabels[d]
	return ok
}

// Label returns the localized display name, or the raw key for unknown days.
func (d Weekday) Label() string {
	if label, ok := weekdayLabels[d]; ok {
		return label
	}
	return string(d)
}

// Index returns the position of d in Weekdays, or -1.
func (d Weekday) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}
