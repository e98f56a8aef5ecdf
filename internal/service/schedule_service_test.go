package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/draft"
)

func TestSetDayOnEmptySlotAssignsFreshID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)

	mon, err := f.schedules.SetDay(ctx, p.ID, domain.Monday, draft.DayForm{Name: "Push"})
	require.NoError(t, err)
	tue, err := f.schedules.SetDay(ctx, p.ID, domain.Tuesday, draft.DayForm{Name: "Pull"})
	require.NoError(t, err)

	assert.NotEmpty(t, mon.ID)
	assert.NotEqual(t, mon.ID, tue.ID)
	assert.NotEqual(t, p.ID, mon.ID)
}

func TestSetDayOnOccupiedSlotPreservesID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)

	first, err := f.schedules.SetDay(ctx, p.ID, domain.Friday, draft.DayForm{Name: "Legs"})
	require.NoError(t, err)
	second, err := f.schedules.SetDay(ctx, p.ID, domain.Friday, draft.DayForm{
		Name:      "Legs v2",
		Exercises: []domain.Exercise{{Name: "Squat", Sets: 5, Reps: 5, RestTime: 180}},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	got, ok, err := f.schedules.GetDay(ctx, p.ID, domain.Friday)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Legs v2", got.Name)
	assert.Len(t, got.Exercises, 1)
}

func TestSetDayValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)

	tests := []struct {
		name string
		form draft.DayForm
	}{
		{"missing workout name", draft.DayForm{}},
		{"blank exercise name", draft.DayForm{Name: "Push", Exercises: draft.Append(nil)}},
		{"zero sets", draft.DayForm{Name: "Push", Exercises: []domain.Exercise{{Name: "Dip", Sets: 0, Reps: 10}}}},
		{"zero reps", draft.DayForm{Name: "Push", Exercises: []domain.Exercise{{Name: "Dip", Sets: 3, Reps: 0}}}},
		{"negative rest", draft.DayForm{Name: "Push", Exercises: []domain.Exercise{{Name: "Dip", Sets: 3, Reps: 8, RestTime: -1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.schedules.SetDay(ctx, p.ID, domain.Monday, tt.form)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	_, ok, err := f.schedules.GetDay(ctx, p.ID, domain.Monday)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.schedules.SetDay(ctx, p.ID, "someday", draft.DayForm{Name: "Push"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetDayUnknownPlanner(t *testing.T) {
	f := newFixture()
	_, err := f.schedules.SetDay(context.Background(), "missing", domain.Monday, draft.DayForm{Name: "Push"})
	assert.ErrorIs(t, err, ErrPlannerNotFound)
}

func TestRemoveDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)
	_, err = f.schedules.SetDay(ctx, p.ID, domain.Wednesday, draft.DayForm{Name: "Core"})
	require.NoError(t, err)

	t.Run("declined leaves the day", func(t *testing.T) {
		c := &recordingConfirmer{answer: false}
		removed, err := f.schedules.RemoveDay(ctx, p.ID, domain.Wednesday, c)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, []string{RemoveDayPrompt}, c.prompts)
		_, ok, err := f.schedules.GetDay(ctx, p.ID, domain.Wednesday)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("confirmed clears the day", func(t *testing.T) {
		removed, err := f.schedules.RemoveDay(ctx, p.ID, domain.Wednesday, AlwaysConfirm)
		require.NoError(t, err)
		assert.True(t, removed)
		_, ok, err := f.schedules.GetDay(ctx, p.ID, domain.Wednesday)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty slot is a no-op", func(t *testing.T) {
		c := &recordingConfirmer{answer: true}
		removed, err := f.schedules.RemoveDay(ctx, p.ID, domain.Wednesday, c)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Empty(t, c.prompts)
	})
}

func TestGetDayUnknownPlanner(t *testing.T) {
	f := newFixture()
	_, _, err := f.schedules.GetDay(context.Background(), "missing", domain.Monday)
	assert.ErrorIs(t, err, ErrPlannerNotFound)
}

func TestWeekdaysInOrder(t *testing.T) {
	f := newFixture()
	days := f.schedules.Weekdays()
	require.Len(t, days, 7)
	assert.Equal(t, WeekdayInfo{Key: domain.Monday, Label: "Segunda"}, days[0])
	assert.Equal(t, WeekdayInfo{Key: domain.Sunday, Label: "Domingo"}, days[6])
}

// A trainer creates "Plan A", adds "Push Day" on monday, appends an exercise,
// names it "Bench Press" with 4 sets of 8 and two minutes rest, and saves.
func TestPushDayScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	const user = "trainer-1"

	_, err := f.editor.OpenPlanner(ctx, user, "")
	require.NoError(t, err)
	_, err = f.editor.EditPlanner(user, draft.PlannerForm{Name: "Plan A", TargetGender: domain.TargetAll, Goal: domain.GoalHypertrophy})
	require.NoError(t, err)
	planner, modal, err := f.editor.SubmitPlanner(ctx, user)
	require.NoError(t, err)
	assert.False(t, modal.IsOpen())

	day, err := f.editor.OpenDay(ctx, user, planner.ID, domain.Monday)
	require.NoError(t, err)
	assert.Equal(t, "Segunda - Add Workout", day.Title())

	_, err = f.editor.RenameDay(user, "Push Day")
	require.NoError(t, err)
	day, err = f.editor.AppendExercise(user)
	require.NoError(t, err)
	require.Len(t, day.Form.Exercises, 1)
	assert.Equal(t, domain.DefaultExercise(), day.Form.Exercises[0])

	_, err = f.editor.SetExerciseField(user, 0, draft.FieldName, "Bench Press")
	require.NoError(t, err)
	_, err = f.editor.SetExerciseField(user, 0, draft.FieldSets, "4")
	require.NoError(t, err)
	_, err = f.editor.SetExerciseField(user, 0, draft.FieldReps, 8)
	require.NoError(t, err)
	_, err = f.editor.SetExerciseField(user, 0, draft.FieldRestTime, 120)
	require.NoError(t, err)

	saved, day, err := f.editor.SubmitDay(ctx, user)
	require.NoError(t, err)
	assert.False(t, day.IsOpen())
	assert.NotEmpty(t, saved.ID)

	stored, err := f.planners.Get(ctx, planner.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Weekday{domain.Monday}, stored.Schedule.Days())
	w, _ := stored.Schedule.Get(domain.Monday)
	assert.Equal(t, "Push Day", w.Name)
	assert.Equal(t, []domain.Exercise{{Name: "Bench Press", Sets: 4, Reps: 8, RestTime: 120}}, w.Exercises)
}
