package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultExercise(t *testing.T) {
	assert.Equal(t, Exercise{Name: "", Sets: 3, Reps: 12, RestTime: 60}, DefaultExercise())
}

func TestExerciseValidate(t *testing.T) {
	tests := []struct {
		name     string
		exercise Exercise
		wantErr  bool
	}{
		{"valid", Exercise{Name: "Squat", Sets: 5, Reps: 5, RestTime: 120}, false},
		{"zero rest allowed", Exercise{Name: "Plank", Sets: 1, Reps: 1, RestTime: 0}, false},
		{"default row has no name", DefaultExercise(), true},
		{"zero sets", Exercise{Name: "Squat", Sets: 0, Reps: 5}, true},
		{"zero reps", Exercise{Name: "Squat", Sets: 3, Reps: 0}, true},
		{"negative rest", Exercise{Name: "Squat", Sets: 3, Reps: 5, RestTime: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.exercise.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDayWorkoutValidateDivesIntoExercises(t *testing.T) {
	day := DayWorkout{Name: "Push Day", Exercises: []Exercise{{Name: "Bench", Sets: 0, Reps: 8}}}
	assert.Error(t, day.Validate())

	day.Exercises[0].Sets = 4
	assert.NoError(t, day.Validate())

	assert.Error(t, DayWorkout{}.Validate(), "name is required")
	assert.NoError(t, DayWorkout{Name: "Empty"}.Validate(), "an empty exercise list is allowed")
}

func TestCloneExercisesNeverNil(t *testing.T) {
	assert.NotNil(t, CloneExercises(nil))
	assert.Len(t, CloneExercises(nil), 0)
}
