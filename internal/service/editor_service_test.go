package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/draft"
)

func TestEditorPlannerModalStartsClosed(t *testing.T) {
	f := newFixture()
	assert.Equal(t, draft.StateClosed, f.editor.PlannerModal("u").State)
	assert.Equal(t, draft.StateClosed, f.editor.DayModal("u").State)

	_, err := f.editor.EditPlanner("u", draft.DefaultPlannerForm())
	assert.ErrorIs(t, err, ErrEditorClosed)
	_, _, err = f.editor.SubmitPlanner(context.Background(), "u")
	assert.ErrorIs(t, err, ErrEditorClosed)
}

func TestEditorFailedSubmitKeepsDraft(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.editor.OpenPlanner(ctx, "u", "")
	require.NoError(t, err)
	_, modal, err := f.editor.SubmitPlanner(ctx, "u")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, draft.StateCreate, modal.State)
	assert.Equal(t, draft.StateCreate, f.editor.PlannerModal("u").State)

	list, err := f.planners.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEditorEditsExistingPlanner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)

	modal, err := f.editor.OpenPlanner(ctx, "u", p.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.StateEdit, modal.State)
	assert.Equal(t, "Plan A", modal.Form.Name)
	assert.Equal(t, "Save Changes", modal.SubmitLabel())

	form := modal.Form
	form.Name = "Plan A+"
	_, err = f.editor.EditPlanner("u", form)
	require.NoError(t, err)
	updated, _, err := f.editor.SubmitPlanner(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "Plan A+", updated.Name)

	list, err := f.planners.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEditorCancelDiscardsDraft(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)

	_, err = f.editor.OpenDay(ctx, "u", p.ID, domain.Sunday)
	require.NoError(t, err)
	_, err = f.editor.RenameDay("u", "Rest walk")
	require.NoError(t, err)
	modal := f.editor.CancelDay("u")
	assert.False(t, modal.IsOpen())

	_, ok, err := f.schedules.GetDay(ctx, p.ID, domain.Sunday)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEditorDayModalPrefillsOccupiedSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)
	_, err = f.schedules.SetDay(ctx, p.ID, domain.Thursday, draft.DayForm{
		Name:      "Arms",
		Exercises: []domain.Exercise{{Name: "Curl", Sets: 3, Reps: 10, RestTime: 45}},
	})
	require.NoError(t, err)

	modal, err := f.editor.OpenDay(ctx, "u", p.ID, domain.Thursday)
	require.NoError(t, err)
	assert.Equal(t, draft.StateEdit, modal.State)
	assert.Equal(t, "Quinta - Edit Workout", modal.Title())
	assert.Equal(t, "Arms", modal.Form.Name)

	_, err = f.editor.RemoveExercise("u", 3)
	assert.ErrorIs(t, err, draft.ErrIndexOutOfRange)
	modal, err = f.editor.RemoveExercise("u", 0)
	require.NoError(t, err)
	assert.Empty(t, modal.Form.Exercises)
}

func TestEditorSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.editor.OpenPlanner(ctx, "alice", "")
	require.NoError(t, err)
	assert.True(t, f.editor.PlannerModal("alice").IsOpen())
	assert.False(t, f.editor.PlannerModal("bob").IsOpen())
}

func TestEditorOpenDayUnknownPlanner(t *testing.T) {
	f := newFixture()
	_, err := f.editor.OpenDay(context.Background(), "u", "missing", domain.Monday)
	assert.ErrorIs(t, err, ErrPlannerNotFound)
	_, err = f.editor.OpenDay(context.Background(), "u", "missing", "funday")
	assert.ErrorIs(t, err, ErrValidation)
}
