package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushDay() DayWorkout {
	return DayWorkout{
		ID:   "d1",
		Name: "Push Day",
		Exercises: []Exercise{
			{Name: "Bench Press", Sets: 4, Reps: 8, RestTime: 90},
		},
	}
}

func TestScheduleWithLeavesReceiverUntouched(t *testing.T) {
	base := Schedule{}
	next := base.With(Monday, pushDay())

	assert.Empty(t, base)
	got, ok := next.Get(Monday)
	require.True(t, ok)
	assert.Equal(t, pushDay(), got)
}

func TestScheduleWithReplacesOnlyThatDay(t *testing.T) {
	s := Schedule{}.With(Monday, pushDay()).With(Friday, DayWorkout{ID: "d2", Name: "Legs"})
	s = s.With(Monday, DayWorkout{ID: "d1", Name: "Chest"})

	mon, _ := s.Get(Monday)
	fri, _ := s.Get(Friday)
	assert.Equal(t, "Chest", mon.Name)
	assert.Equal(t, "Legs", fri.Name)
	assert.Len(t, s, 2)
}

func TestScheduleWithout(t *testing.T) {
	s := Schedule{}.With(Monday, pushDay())
	cleared := s.Without(Monday)

	_, ok := cleared.Get(Monday)
	assert.False(t, ok)
	_, ok = s.Get(Monday)
	assert.True(t, ok, "original schedule must keep its entry")

	assert.Empty(t, cleared.Without(Sunday))
}

func TestScheduleDaysAreInWeekOrder(t *testing.T) {
	s := Schedule{}.
		With(Sunday, DayWorkout{Name: "Rest walk"}).
		With(Monday, pushDay()).
		With(Wednesday, DayWorkout{Name: "Pull"})

	assert.Equal(t, []Weekday{Monday, Wednesday, Sunday}, s.Days())
}

func TestScheduleGetReturnsCopy(t *testing.T) {
	s := Schedule{}.With(Monday, pushDay())
	got, _ := s.Get(Monday)
	got.Exercises[0].Sets = 99

	again, _ := s.Get(Monday)
	assert.Equal(t, 4, again.Exercises[0].Sets)
}

func TestPlannerCloneIsDeep(t *testing.T) {
	p := &WorkoutPlanner{ID: "p1", Name: "Plan A", TargetGender: TargetAll, Goal: GoalStrength,
		Schedule: Schedule{}.With(Monday, pushDay())}
	c := p.Clone()
	c.Schedule[Monday].Exercises[0].Name = "Changed"
	c.Name = "Other"

	assert.Equal(t, "Plan A", p.Name)
	assert.Equal(t, "Bench Press", p.Schedule[Monday].Exercises[0].Name)
	assert.Nil(t, (*WorkoutPlanner)(nil).Clone())
}

func TestPlannerValidate(t *testing.T) {
	tests := []struct {
		name    string
		planner WorkoutPlanner
		wantErr bool
	}{
		{"valid", WorkoutPlanner{Name: "Plan A", TargetGender: TargetAll, Goal: GoalStrength}, false},
		{"female weight loss", WorkoutPlanner{Name: "Cut", TargetGender: TargetFemale, Goal: GoalWeightLoss}, false},
		{"missing name", WorkoutPlanner{TargetGender: TargetAll, Goal: GoalStrength}, true},
		{"bad gender", WorkoutPlanner{Name: "X", TargetGender: "x", Goal: GoalStrength}, true},
		{"bad goal", WorkoutPlanner{Name: "X", TargetGender: TargetMale, Goal: "cardio"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.planner.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "All Genders", TargetAll.Label())
	assert.Equal(t, "Male", TargetMale.Label())
	assert.Equal(t, "Weight Loss", GoalWeightLoss.Label())
}
