package service

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/repository"
	"context"
	"errors"

	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrPlannerNotFound = errors.New("workout planner not found")
)

// PlannerInput carries the editable header of a planner.
type PlannerInput struct {
	Name         string
	TargetGender domain.TargetGender
	Goal         domain.Goal
}

// --- Service Interface ---
type PlannerService interface {
	Create(ctx context.Context, input PlannerInput) (*domain.WorkoutPlanner, error)
	Update(ctx context.Context, plannerID string, input PlannerInput) (*domain.WorkoutPlanner, error)
	// Delete removes the planner once confirm agrees. It reports whether the planner was removed.
	Delete(ctx context.Context, plannerID string, confirm Confirmer) (bool, error)
	Get(ctx context.Context, plannerID string) (*domain.WorkoutPlanner, error)
	List(ctx context.Context) ([]domain.WorkoutPlanner, error)
}

// --- Service Implementation ---

// plannerService implements the PlannerService interface.
type plannerService struct {
	plannerRepo repository.PlannerRepository
	log         *zap.SugaredLogger
}

// NewPlannerService creates a new instance of plannerService.
func NewPlannerService(plannerRepo repository.PlannerRepository, log *zap.SugaredLogger) PlannerService {
	return &plannerService{plannerRepo: plannerRepo, log: log}
}

// Create validates the header and appends a planner with an empty schedule.
func (s *plannerService) Create(ctx context.Context, input PlannerInput) (*domain.WorkoutPlanner, error) {
	planner := &domain.WorkoutPlanner{
		Name:         input.Name,
		TargetGender: input.TargetGender,
		Goal:         input.Goal,
	}
	if err := planner.Validate(); err != nil {
		s.log.Warnw("rejected planner", "name", input.Name, "error", err)
		return nil, validationError(err)
	}

	if _, err := s.plannerRepo.Create(ctx, planner); err != nil {
		s.log.Errorw("failed to create planner", "error", err)
		return nil, err
	}
	s.log.Infow("planner created", "plannerId", planner.ID, "name", planner.Name)
	return planner, nil
}

// Update replaces name, target gender and goal, keeping the schedule.
func (s *plannerService) Update(ctx context.Context, plannerID string, input PlannerInput) (*domain.WorkoutPlanner, error) {
	planner := &domain.WorkoutPlanner{
		ID:           plannerID,
		Name:         input.Name,
		TargetGender: input.TargetGender,
		Goal:         input.Goal,
	}
	if err := planner.Validate(); err != nil {
		s.log.Warnw("rejected planner update", "plannerId", plannerID, "error", err)
		return nil, validationError(err)
	}

	if err := s.plannerRepo.Update(ctx, planner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlannerNotFound
		}
		s.log.Errorw("failed to update planner", "plannerId", plannerID, "error", err)
		return nil, err
	}
	s.log.Infow("planner updated", "plannerId", plannerID)
	return s.Get(ctx, plannerID)
}

func (s *plannerService) Delete(ctx context.Context, plannerID string, confirm Confirmer) (bool, error) {
	if _, err := s.Get(ctx, plannerID); err != nil {
		return false, err
	}

	ok, err := confirm.Confirm(ctx, DeletePlannerPrompt)
	if err != nil {
		return false, err
	}
	if !ok {
		s.log.Debugw("planner deletion declined", "plannerId", plannerID)
		return false, nil
	}

	if err := s.plannerRepo.Delete(ctx, plannerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrPlannerNotFound
		}
		s.log.Errorw("failed to delete planner", "plannerId", plannerID, "error", err)
		return false, err
	}
	s.log.Infow("planner deleted", "plannerId", plannerID)
	return true, nil
}

func (s *plannerService) Get(ctx context.Context, plannerID string) (*domain.WorkoutPlanner, error) {
	planner, err := s.plannerRepo.GetByID(ctx, plannerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlannerNotFound
		}
		return nil, err
	}
	return planner, nil
}

func (s *plannerService) List(ctx context.Context) ([]domain.WorkoutPlanner, error) {
	return s.plannerRepo.List(ctx)
}
