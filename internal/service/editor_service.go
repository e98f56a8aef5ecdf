package service

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/draft"
	"context"
	"sync"

	"go.uber.org/zap"
)

// ErrEditorClosed is returned when an edit targets a modal that is not open.
var ErrEditorClosed = draft.ErrModalClosed

// EditorService holds the planner and day modals of each signed-in trainer
// and commits them through PlannerService and ScheduleService.
type EditorService interface {
	PlannerModal(userID string) draft.PlannerModal
	// OpenPlanner opens the create form, or the edit form when plannerID is set.
	OpenPlanner(ctx context.Context, userID, plannerID string) (draft.PlannerModal, error)
	EditPlanner(userID string, form draft.PlannerForm) (draft.PlannerModal, error)
	CancelPlanner(userID string) draft.PlannerModal
	// SubmitPlanner commits the form. On failure the modal stays open with its draft.
	SubmitPlanner(ctx context.Context, userID string) (*domain.WorkoutPlanner, draft.PlannerModal, error)

	DayModal(userID string) draft.DayModal
	OpenDay(ctx context.Context, userID, plannerID string, day domain.Weekday) (draft.DayModal, error)
	RenameDay(userID, name string) (draft.DayModal, error)
	AppendExercise(userID string) (draft.DayModal, error)
	RemoveExercise(userID string, index int) (draft.DayModal, error)
	SetExerciseField(userID string, index int, field draft.ExerciseField, value any) (draft.DayModal, error)
	CancelDay(userID string) draft.DayModal
	SubmitDay(ctx context.Context, userID string) (*domain.DayWorkout, draft.DayModal, error)
}

type editorSession struct {
	planner draft.PlannerModal
	day     draft.DayModal
}

type editorService struct {
	planners  PlannerService
	schedules ScheduleService
	log       *zap.SugaredLogger

	mu       sync.Mutex
	sessions map[string]*editorSession
}

func NewEditorService(planners PlannerService, schedules ScheduleService, log *zap.SugaredLogger) EditorService {
	return &editorService{
		planners:  planners,
		schedules: schedules,
		log:       log,
		sessions:  make(map[string]*editorSession),
	}
}

// session must be called with s.mu held.
func (s *editorService) session(userID string) *editorSession {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &editorSession{planner: draft.ClosedPlannerModal(), day: draft.ClosedDayModal()}
		s.sessions[userID] = sess
	}
	return sess
}

// --- Planner modal ---

func (s *editorService) PlannerModal(userID string) draft.PlannerModal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(userID).planner
}

func (s *editorService) OpenPlanner(ctx context.Context, userID, plannerID string) (draft.PlannerModal, error) {
	modal := draft.OpenPlannerCreate()
	if plannerID != "" {
		planner, err := s.planners.Get(ctx, plannerID)
		if err != nil {
			return draft.PlannerModal{}, err
		}
		modal = draft.OpenPlannerEdit(planner)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(userID).planner = modal
	return modal, nil
}

func (s *editorService) EditPlanner(userID string, form draft.PlannerForm) (draft.PlannerModal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	next, err := sess.planner.WithForm(form)
	if err != nil {
		return sess.planner, err
	}
	sess.planner = next
	return next, nil
}

func (s *editorService) CancelPlanner(userID string) draft.PlannerModal {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	sess.planner = sess.planner.Cancel()
	return sess.planner
}

func (s *editorService) SubmitPlanner(ctx context.Context, userID string) (*domain.WorkoutPlanner, draft.PlannerModal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)

	var committed *domain.WorkoutPlanner
	next, err := sess.planner.Submit(func(m draft.PlannerModal) error {
		input := PlannerInput{Name: m.Form.Name, TargetGender: m.Form.TargetGender, Goal: m.Form.Goal}
		var err error
		if m.State == draft.StateEdit {
			committed, err = s.planners.Update(ctx, m.PlannerID, input)
		} else {
			committed, err = s.planners.Create(ctx, input)
		}
		return err
	})
	sess.planner = next
	if err != nil {
		return nil, next, err
	}
	return committed, next, nil
}

// --- Day modal ---

func (s *editorService) DayModal(userID string) draft.DayModal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(userID).day
}

func (s *editorService) OpenDay(ctx context.Context, userID, plannerID string, day domain.Weekday) (draft.DayModal, error) {
	if !day.Valid() {
		return draft.DayModal{}, validationError(domain.ErrInvalidWeekday)
	}
	planner, err := s.planners.Get(ctx, plannerID)
	if err != nil {
		return draft.DayModal{}, err
	}
	modal := draft.OpenDay(planner, day)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(userID).day = modal
	return modal, nil
}

// updateDay applies fn to the open day modal, keeping the old modal on error.
func (s *editorService) updateDay(userID string, fn func(draft.DayModal) (draft.DayModal, error)) (draft.DayModal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	next, err := fn(sess.day)
	if err != nil {
		return sess.day, err
	}
	sess.day = next
	return next, nil
}

func (s *editorService) RenameDay(userID, name string) (draft.DayModal, error) {
	return s.updateDay(userID, func(m draft.DayModal) (draft.DayModal, error) { return m.Rename(name) })
}

func (s *editorService) AppendExercise(userID string) (draft.DayModal, error) {
	return s.updateDay(userID, draft.DayModal.AppendExercise)
}

func (s *editorService) RemoveExercise(userID string, index int) (draft.DayModal, error) {
	return s.updateDay(userID, func(m draft.DayModal) (draft.DayModal, error) { return m.RemoveExercise(index) })
}

func (s *editorService) SetExerciseField(userID string, index int, field draft.ExerciseField, value any) (draft.DayModal, error) {
	return s.updateDay(userID, func(m draft.DayModal) (draft.DayModal, error) {
		return m.SetExerciseField(index, field, value)
	})
}

func (s *editorService) CancelDay(userID string) draft.DayModal {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	sess.day = sess.day.Cancel()
	return sess.day
}

func (s *editorService) SubmitDay(ctx context.Context, userID string) (*domain.DayWorkout, draft.DayModal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)

	var committed *domain.DayWorkout
	next, err := sess.day.Submit(func(m draft.DayModal) error {
		var err error
		committed, err = s.schedules.SetDay(ctx, m.PlannerID, m.Weekday, m.Form)
		return err
	})
	sess.day = next
	if err != nil {
		return nil, next, err
	}
	s.log.Debugw("day modal committed", "userId", userID, "workoutId", committed.ID)
	return committed, next, nil
}
