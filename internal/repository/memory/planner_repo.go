// internal/repository/memory/planner_repo.go
package memory

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/idgen"
	"alcyxob/trainer-console/internal/repository"
	"context"
	"errors"
	"sync"
	"time"
)

// plannerRepository implements repository.PlannerRepository in process memory.
// The mutex serializes handlers the way the browser's event loop did, so every
// operation is atomic and the last write wins.
type plannerRepository struct {
	mu       sync.RWMutex
	ids      idgen.Generator
	planners []*domain.WorkoutPlanner
}

// NewPlannerRepository creates an empty planner collection.
func NewPlannerRepository(ids idgen.Generator) repository.PlannerRepository {
	return &plannerRepository{ids: ids}
}

// Create appends a new planner with an empty schedule.
func (r *plannerRepository) Create(ctx context.Context, planner *domain.WorkoutPlanner) (string, error) {
	if planner.Name == "" {
		return "", errors.New("planner requires a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := planner.Clone()
	stored.ID = r.ids.NewID()
	stored.Schedule = domain.Schedule{}
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.planners = append(r.planners, stored)

	planner.ID = stored.ID
	planner.Schedule = domain.Schedule{}
	planner.CreatedAt = now
	planner.UpdatedAt = now
	return stored.ID, nil
}

// GetByID retrieves a copy of a single planner.
func (r *plannerRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutPlanner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	return r.planners[i].Clone(), nil
}

// List returns copies of all planners in creation order.
func (r *plannerRepository) List(ctx context.Context) ([]domain.WorkoutPlanner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WorkoutPlanner, len(r.planners))
	for i, p := range r.planners {
		out[i] = *p.Clone()
	}
	return out, nil
}

// Update replaces name, target gender and goal. The stored schedule is preserved.
func (r *plannerRepository) Update(ctx context.Context, planner *domain.WorkoutPlanner) error {
	if planner.ID == "" {
		return errors.New("planner ID is required for update")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(planner.ID)
	if i < 0 {
		return repository.ErrNotFound
	}

	next := r.planners[i].Clone()
	next.Name = planner.Name
	next.TargetGender = planner.TargetGender
	next.Goal = planner.Goal
	next.UpdatedAt = time.Now().UTC()
	r.planners[i] = next
	return nil
}

// Delete removes the planner, keeping the order of the others.
func (r *plannerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.planners = append(r.planners[:i:i], r.planners[i+1:]...)
	return nil
}

func (r *plannerRepository) PutDay(ctx context.Context, plannerID string, day domain.Weekday, workout domain.DayWorkout) (*domain.DayWorkout, error) {
	if !day.Valid() {
		return nil, domain.ErrInvalidWeekday
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(plannerID)
	if i < 0 {
		return nil, repository.ErrNotFound
	}

	current := r.planners[i]
	if existing, ok := current.Schedule.Get(day); ok {
		workout.ID = existing.ID
	} else {
		workout.ID = r.ids.NewID()
	}
	workout.Exercises = domain.CloneExercises(workout.Exercises)

	next := current.Clone()
	next.Schedule = current.Schedule.With(day, workout)
	next.UpdatedAt = time.Now().UTC()
	r.planners[i] = next

	stored := workout.Clone()
	return &stored, nil
}

func (r *plannerRepository) RemoveDay(ctx context.Context, plannerID string, day domain.Weekday) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(plannerID)
	if i < 0 {
		return repository.ErrNotFound
	}

	current := r.planners[i]
	if _, ok := current.Schedule.Get(day); !ok {
		return nil
	}
	next := current.Clone()
	next.Schedule = current.Schedule.Without(day)
	next.UpdatedAt = time.Now().UTC()
	r.planners[i] = next
	return nil
}

// indexOf must be called with r.mu held.
func (r *plannerRepository) indexOf(id string) int {
	for i, p := range r.planners {
		if p.ID == id {
			return i
		}
	}
	return -1
}
