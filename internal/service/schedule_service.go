package service

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/draft"
	"alcyxob/trainer-console/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// WeekdayInfo is a schedule slot with its display label.
type WeekdayInfo struct {
	Key   domain.Weekday `json:"key"`
	Label string         `json:"label"`
}

type ScheduleService interface {
	// SetDay stores form as the workout of day. An occupied slot keeps its workout ID.
	SetDay(ctx context.Context, plannerID string, day domain.Weekday, form draft.DayForm) (*domain.DayWorkout, error)
	// RemoveDay clears day once confirm agrees. An empty slot is left alone without asking.
	RemoveDay(ctx context.Context, plannerID string, day domain.Weekday, confirm Confirmer) (bool, error)
	// GetDay returns the workout at day; false means the slot is empty.
	GetDay(ctx context.Context, plannerID string, day domain.Weekday) (*domain.DayWorkout, bool, error)
	Weekdays() []WeekdayInfo
}

type scheduleService struct {
	plannerRepo repository.PlannerRepository
	log         *zap.SugaredLogger
}

func NewScheduleService(plannerRepo repository.PlannerRepository, log *zap.SugaredLogger) ScheduleService {
	return &scheduleService{plannerRepo: plannerRepo, log: log}
}

func (s *scheduleService) SetDay(ctx context.Context, plannerID string, day domain.Weekday, form draft.DayForm) (*domain.DayWorkout, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("%w: %v %q", ErrValidation, domain.ErrInvalidWeekday, day)
	}
	workout := domain.DayWorkout{
		Name:      form.Name,
		Exercises: domain.CloneExercises(form.Exercises),
	}
	if err := workout.Validate(); err != nil {
		s.log.Warnw("rejected day workout", "plannerId", plannerID, "weekday", day, "error", err)
		return nil, validationError(err)
	}

	stored, err := s.plannerRepo.PutDay(ctx, plannerID, day, workout)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlannerNotFound
		}
		s.log.Errorw("failed to set day workout", "plannerId", plannerID, "weekday", day, "error", err)
		return nil, err
	}
	s.log.Infow("day workout saved", "plannerId", plannerID, "weekday", day, "workoutId", stored.ID, "exercises", len(stored.Exercises))
	return stored, nil
}

func (s *scheduleService) RemoveDay(ctx context.Context, plannerID string, day domain.Weekday, confirm Confirmer) (bool, error) {
	_, present, err := s.GetDay(ctx, plannerID, day)
	if err != nil || !present {
		return false, err
	}

	ok, err := confirm.Confirm(ctx, RemoveDayPrompt)
	if err != nil || !ok {
		return false, err
	}

	if err := s.plannerRepo.RemoveDay(ctx, plannerID, day); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrPlannerNotFound
		}
		s.log.Errorw("failed to remove day workout", "plannerId", plannerID, "weekday", day, "error", err)
		return false, err
	}
	s.log.Infow("day workout removed", "plannerId", plannerID, "weekday", day)
	return true, nil
}

func (s *scheduleService) GetDay(ctx context.Context, plannerID string, day domain.Weekday) (*domain.DayWorkout, bool, error) {
	if !day.Valid() {
		return nil, false, fmt.Errorf("%w: %v %q", ErrValidation, domain.ErrInvalidWeekday, day)
	}
	planner, err := s.plannerRepo.GetByID(ctx, plannerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrPlannerNotFound
		}
		return nil, false, err
	}
	workout, ok := planner.Schedule.Get(day)
	if !ok {
		return nil, false, nil
	}
	return &workout, true, nil
}

func (s *scheduleService) Weekdays() []WeekdayInfo {
	out := make([]WeekdayInfo, len(domain.Weekdays))
	for i, d := range domain.Weekdays {
		out[i] = WeekdayInfo{Key: d, Label: d.Label()}
	}
	return out
}
