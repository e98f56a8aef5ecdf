package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/idgen"
	"alcyxob/trainer-console/internal/repository"
)

func newPlanner(name string) *domain.WorkoutPlanner {
	return &domain.WorkoutPlanner{Name: name, TargetGender: domain.TargetAll, Goal: domain.GoalStrength}
}

func TestPlannerCreateAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPlannerRepository(idgen.NewSequence("p"))

	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, newPlanner(name))
		require.NoError(t, err)
	}
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{list[0].Name, list[1].Name, list[2].Name})
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, []string{list[0].ID, list[1].ID, list[2].ID})
	for _, p := range list {
		assert.NotNil(t, p.Schedule)
		assert.Empty(t, p.Schedule)
	}
}

func TestPlannerCreateIgnoresIncomingSchedule(t *testing.T) {
	ctx := context.Background()
	repo := NewPlannerRepository(idgen.NewSequence("p"))
	p := newPlanner("A")
	p.Schedule = domain.Schedule{}.With(domain.Monday, domain.DayWorkout{Name: "x"})

	id, err := repo.Create(ctx, p)
	require.NoError(t, err)
	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, stored.Schedule)
}

func TestPlannerUpdatePreservesSchedule(t *testing.T) {
	ctx := context.Background()
	repo := NewPlannerRepository(idgen.NewSequence("p"))
	id, _ := repo.Create(ctx, newPlanner("A"))
	_, err := repo.PutDay(ctx, id, domain.Monday, domain.DayWorkout{Name: "Push"})
	require.NoError(t, err)

	err = repo.Update(ctx, &domain.WorkoutPlanner{ID: id, Name: "A2", TargetGender: domain.TargetFemale, Goal: domain.GoalHypertrophy})
	require.NoError(t, err)

	got, _ := repo.GetByID(ctx, id)
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, domain.TargetFemale, got.TargetGender)
	_, ok := got.Schedule.Get(domain.Monday)
	assert.True(t, ok)

	err = repo.Update(ctx, &domain.WorkoutPlanner{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlannerDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPlannerRepository(idgen.NewSequence("p"))
	a, _ := repo.Create(ctx, newPlanner("A"))
	b, _ := repo.Create(ctx, newPlanner("B"))
	c, _ := repo.Create(ctx, newPlanner("C"))

	require.NoError(t, repo.Delete(ctx, b))
	list, _ := repo.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0].ID)
	assert.Equal(t, c, list[1].ID)

	assert.ErrorIs(t, repo.Delete(ctx, b), repository.ErrNotFound)
}

func TestPutDayGeneratesThenPreservesID(t *testing.T) {
	ctx := context.Background()
	repo := NewPlannerRepository(idgen.NewSequence("id"))
	pid, _ := repo.Create(ctx, newPlanner("A"))

	first, err := repo.PutDay(ctx, pid, domain.Monday, domain.DayWorkout{ID: "ignored", Name: "Push"})
	require.NoError(t, err)
	assert.Equal(t, "id-2", first.ID)

	second, err := repo.PutDay(ctx, pid, domain.Monday, domain.DayWorkout{Name: "Push v2",
		Exercises: []domain.Exercise{{Name: "Dips", Sets: 3, Reps: 10}}})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, _ := repo.GetByID(ctx, pid)
	day, ok := got.Schedule.Get(domain.Monday)
	require.True(t, ok)
	assert.Equal(t, "Push v2", day.Name)
	assert.Len(t, day.Exercises, 1)
}

func TestPutDayErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewPlannerRepository(idgen.NewSequence("id"))
	pid, _ := repo.Create(ctx, newPlanner("A"))

	_, err := repo.PutDay(ctx, "nope", domain.Monday, domain.DayWorkout{Name: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.PutDay(ctx, pid, "someday", domain.DayWorkout{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
}

func TestRemoveDay(t *testing.T) {
	ctx := context.Background()
	repo := NewPlannerRepository(idgen.NewSequence("id"))
	pid, _ := repo.Create(ctx, newPlanner("A"))
	_, _ = repo.PutDay(ctx, pid, domain.Monday, domain.DayWorkout{Name: "Push"})
	_, _ = repo.PutDay(ctx, pid, domain.Friday, domain.DayWorkout{Name: "Pull"})

	require.NoError(t, repo.RemoveDay(ctx, pid, domain.Monday))
	require.NoError(t, repo.RemoveDay(ctx, pid, domain.Monday), "empty slot is a no-op")

	got, _ := repo.GetByID(ctx, pid)
	assert.Equal(t, []domain.Weekday{domain.Friday}, got.Schedule.Days())
	assert.ErrorIs(t, repo.RemoveDay(ctx, "nope", domain.Monday), repository.ErrNotFound)
}

func TestReturnedPlannersAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPlannerRepository(idgen.NewSequence("id"))
	pid, _ := repo.Create(ctx, newPlanner("A"))
	_, _ = repo.PutDay(ctx, pid, domain.Monday, domain.DayWorkout{Name: "Push",
		Exercises: []domain.Exercise{{Name: "Bench", Sets: 4, Reps: 8}}})

	got, _ := repo.GetByID(ctx, pid)
	got.Name = "mutated"
	got.Schedule[domain.Monday].Exercises[0].Sets = 1

	again, _ := repo.GetByID(ctx, pid)
	assert.Equal(t, "A", again.Name)
	assert.Equal(t, 4, again.Schedule[domain.Monday].Exercises[0].Sets)
}
