// internal/domain/planner.go
package domain

import (
	"time"
)

// TargetGender is the audience a planner is written for.
type TargetGender string

const (
	TargetMale   TargetGender = "M"
	TargetFemale TargetGender = "F"
	TargetAll    TargetGender = "all"
)

func (g TargetGender) Label() string {
	switch g {
	case TargetMale:
		return "Male"
	case TargetFemale:
		return "Female"
	default:
		return "All Genders"
	}
}

// Goal is the training objective of a planner.
type Goal string

const (
	GoalHypertrophy Goal = "hypertrophy"
	GoalWeightLoss  Goal = "weightLoss"
	GoalStrength    Goal = "strength"
)

func (g Goal) Label() string {
	switch g {
	case GoalHypertrophy:
		return "Hypertrophy"
	case GoalWeightLoss:
		return "Weight Loss"
	case GoalStrength:
		return "Strength"
	default:
		return string(g)
	}
}

// WorkoutPlanner is a named weekly program holding at most one workout per weekday.
type WorkoutPlanner struct {
	ID           string       `json:"id"`
	Name         string       `json:"name" validate:"required"`
	TargetGender TargetGender `json:"targetGender" validate:"oneof=M F all"`
	Goal         Goal         `json:"goal" validate:"oneof=hypertrophy weightLoss strength"`
	Schedule     Schedule     `json:"schedule"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Validate checks the planner header fields. Day workouts are validated when they are set.
func (p *WorkoutPlanner) Validate() error {
	return validate.Struct(p)
}

// Clone returns a deep copy, schedule and exercise lists included.
func (p *WorkoutPlanner) Clone() *WorkoutPlanner {
	if p == nil {
		return nil
	}
	out := *p
	out.Schedule = p.Schedule.Clone()
	return &out
}

// Schedule maps each occupied weekday to its workout. Updates go through
// With and Without, which return a new Schedule and leave the receiver intact.
type Schedule map[Weekday]DayWorkout

// Get reports the workout at day, if any.
func (s Schedule) Get(day Weekday) (DayWorkout, bool) {
	w, ok := s[day]
	if !ok {
		return DayWorkout{}, false
	}
	return w.Clone(), true
}

// With returns a copy of s with day set to w, replacing any previous entry.
func (s Schedule) With(day Weekday, w DayWorkout) Schedule {
	out := s.Clone()
	out[day] = w.Clone()
	return out
}

// Without returns a copy of s with the entry at day removed.
func (s Schedule) Without(day Weekday) Schedule {
	out := s.Clone()
	delete(out, day)
	return out
}

// Days lists the occupied weekdays in week order.
func (s Schedule) Days() []Weekday {
	days := make([]Weekday, 0, len(s))
	for _, d := range Weekdays {
		if _, ok := s[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

// Clone deep-copies s. The result is never nil.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for day, w := range s {
		out[day] = w.Clone()
	}
	return out
}
