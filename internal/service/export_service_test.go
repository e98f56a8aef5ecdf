package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/draft"
	"alcyxob/trainer-console/internal/storage"
)

type fakeStorage struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeStorage) PutObject(_ context.Context, key, contentType string, body []byte) error {
	f.objects[key] = body
	f.types[key] = contentType
	return nil
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://files.example.com/" + key + "?sig=abc", nil
}

func TestRenderPlannerListsDaysInWeekOrder(t *testing.T) {
	p := &domain.WorkoutPlanner{
		Name:         "Plan A",
		TargetGender: domain.TargetFemale,
		Goal:         domain.GoalWeightLoss,
		Schedule: domain.Schedule{}.
			With(domain.Friday, domain.DayWorkout{Name: "Legs"}).
			With(domain.Monday, domain.DayWorkout{Name: "Push", Exercises: []domain.Exercise{{Name: "Bench Press", Sets: 4, Reps: 8, RestTime: 120}}}),
	}

	out, err := RenderPlanner(p)
	require.NoError(t, err)

	var doc PlannerDocument
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "Female", doc.TargetGender)
	assert.Equal(t, "Weight Loss", doc.Goal)
	require.Len(t, doc.Days, 2)
	assert.Equal(t, "Segunda", doc.Days[0].Label)
	assert.Equal(t, "Sexta", doc.Days[1].Label)
	assert.Equal(t, "4×8 • 120s", doc.Days[0].Exercises[0].Summary)
}

func TestSharePlannerUploadsDocument(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)
	_, err = f.schedules.SetDay(ctx, p.ID, domain.Monday, draft.DayForm{Name: "Push Day"})
	require.NoError(t, err)

	files := newFakeStorage()
	svc := NewExportService(f.planners, files, 10*time.Minute, zap.NewNop().Sugar())
	shared, err := svc.SharePlanner(ctx, p.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(shared.ObjectKey, "planners/"+p.ID+"/"))
	assert.True(t, strings.HasSuffix(shared.ObjectKey, ".yaml"))
	assert.Contains(t, shared.URL, shared.ObjectKey)
	assert.Equal(t, "application/yaml", files.types[shared.ObjectKey])
	assert.Contains(t, string(files.objects[shared.ObjectKey]), "Push Day")
}

func TestSharePlannerErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p, err := f.planners.Create(ctx, planA())
	require.NoError(t, err)

	disabled := NewExportService(f.planners, storage.Disabled{}, 0, zap.NewNop().Sugar())
	_, err = disabled.SharePlanner(ctx, p.ID)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = disabled.SharePlanner(ctx, "missing")
	assert.ErrorIs(t, err, ErrPlannerNotFound)
}
