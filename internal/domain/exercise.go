// internal/domain/exercise.go
package domain

// Exercise is one movement inside a DayWorkout. It has no identity of its own:
// it is addressed by its position in the parent's exercise list.
type Exercise struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Sets     int    `json:"sets" yaml:"sets" validate:"min=1"`
	Reps     int    `json:"reps" yaml:"reps" validate:"min=1"`
	RestTime int    `json:"restTime" yaml:"restTime" validate:"min=0"` // Seconds between sets
}

// Default row values used when a trainer adds an exercise to a day.
const (
	DefaultSets     = 3
	DefaultReps     = 12
	DefaultRestTime = 60
)

// DefaultExercise returns the blank row appended by the day editor.
func DefaultExercise() Exercise {
	return Exercise{Name: "", Sets: DefaultSets, Reps: DefaultReps, RestTime: DefaultRestTime}
}

// Validate checks the commit-time constraints (name set, sets/reps >= 1, rest >= 0).
func (e Exercise) Validate() error {
	return validate.Struct(e)
}

// DayWorkout is the named list of exercises scheduled for one weekday.
type DayWorkout struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name" validate:"required"`
	Exercises []Exercise `json:"exercises" yaml:"exercises" validate:"dive"`
}

func (w DayWorkout) Validate() error {
	return validate.Struct(w)
}

// Clone returns a copy that shares no exercise storage with w.
func (w DayWorkout) Clone() DayWorkout {
	out := w
	out.Exercises = CloneExercises(w.Exercises)
	return out
}

// CloneExercises copies list; a nil list becomes an empty one.
func CloneExercises(list []Exercise) []Exercise {
	out := make([]Exercise, len(list))
	copy(out, list)
	return out
}
