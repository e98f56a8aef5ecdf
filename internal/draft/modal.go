package draft

import (
	"errors"

	"alcyxob/trainer-console/internal/domain"
)

var ErrModalClosed = errors.New("editor is not open")

// State of an editor modal. A modal is either closed or open in create or edit mode.
type State string

const (
	StateClosed State = "closed"
	StateCreate State = "create"
	StateEdit   State = "edit"
)

// PlannerForm is the header of a planner as typed into the planner modal.
type PlannerForm struct {
	Name         string              `json:"name"`
	TargetGender domain.TargetGender `json:"targetGender"`
	Goal         domain.Goal         `json:"goal"`
}

// DefaultPlannerForm is the blank create form.
func DefaultPlannerForm() PlannerForm {
	return PlannerForm{Name: "", TargetGender: domain.TargetAll, Goal: domain.GoalHypertrophy}
}

// PlannerModal is the create/edit planner dialog.
type PlannerModal struct {
	State     State       `json:"state"`
	PlannerID string      `json:"plannerId,omitempty"`
	Form      PlannerForm `json:"form"`
}

func ClosedPlannerModal() PlannerModal {
	return PlannerModal{State: StateClosed, Form: DefaultPlannerForm()}
}

// OpenPlannerCreate opens a blank planner modal.
func OpenPlannerCreate() PlannerModal {
	return PlannerModal{State: StateCreate, Form: DefaultPlannerForm()}
}

// OpenPlannerEdit opens the modal prefilled with p's header.
func OpenPlannerEdit(p *domain.WorkoutPlanner) PlannerModal {
	return PlannerModal{
		State:     StateEdit,
		PlannerID: p.ID,
		Form:      PlannerForm{Name: p.Name, TargetGender: p.TargetGender, Goal: p.Goal},
	}
}

func (m PlannerModal) IsOpen() bool { return m.State == StateCreate || m.State == StateEdit }

// WithForm replaces the staged form.
func (m PlannerModal) WithForm(f PlannerForm) (PlannerModal, error) {
	if !m.IsOpen() {
		return m, ErrModalClosed
	}
	m.Form = f
	return m, nil
}

// Cancel discards the staged form.
func (m PlannerModal) Cancel() PlannerModal { return ClosedPlannerModal() }

// Submit hands the staged form to commit. The modal closes only when commit
// succeeds; otherwise it is returned as is, still open, with commit's error.
func (m PlannerModal) Submit(commit func(PlannerModal) error) (PlannerModal, error) {
	if !m.IsOpen() {
		return m, ErrModalClosed
	}
	if err := commit(m); err != nil {
		return m, err
	}
	return ClosedPlannerModal(), nil
}

func (m PlannerModal) Title() string {
	if m.State == StateEdit {
		return "Edit Planner"
	}
	return "Create New Planner"
}

func (m PlannerModal) SubmitLabel() string {
	if m.State == StateEdit {
		return "Save Changes"
	}
	return "Create Planner"
}

// DayForm is the day workout as typed into the day modal.
type DayForm struct {
	Name      string            `json:"name"`
	Exercises []domain.Exercise `json:"exercises"`
}

// DayModal is the add/edit workout dialog for one weekday of one planner.
type DayModal struct {
	State     State          `json:"state"`
	PlannerID string         `json:"plannerId,omitempty"`
	Weekday   domain.Weekday `json:"weekday,omitempty"`
	Form      DayForm        `json:"form"`
}

func ClosedDayModal() DayModal {
	return DayModal{State: StateClosed, Form: DayForm{Exercises: []domain.Exercise{}}}
}

// OpenDay opens the modal for p at day, prefilled from the slot when occupied.
func OpenDay(p *domain.WorkoutPlanner, day domain.Weekday) DayModal {
	m := DayModal{
		State:     StateCreate,
		PlannerID: p.ID,
		Weekday:   day,
		Form:      DayForm{Exercises: []domain.Exercise{}},
	}
	if w, ok := p.Schedule.Get(day); ok {
		m.State = StateEdit
		m.Form = DayForm{Name: w.Name, Exercises: w.Exercises}
	}
	return m
}

func (m DayModal) IsOpen() bool { return m.State == StateCreate || m.State == StateEdit }

func (m DayModal) Rename(name string) (DayModal, error) {
	if !m.IsOpen() {
		return m, ErrModalClosed
	}
	m.Form.Name = name
	return m, nil
}

func (m DayModal) AppendExercise() (DayModal, error) {
	if !m.IsOpen() {
		return m, ErrModalClosed
	}
	m.Form.Exercises = Append(m.Form.Exercises)
	return m, nil
}

func (m DayModal) RemoveExercise(index int) (DayModal, error) {
	if !m.IsOpen() {
		return m, ErrModalClosed
	}
	list, ok := RemoveAt(m.Form.Exercises, index)
	if !ok {
		return m, ErrIndexOutOfRange
	}
	m.Form.Exercises = list
	return m, nil
}

func (m DayModal) SetExerciseField(index int, field ExerciseField, value any) (DayModal, error) {
	if !m.IsOpen() {
		return m, ErrModalClosed
	}
	list, err := SetField(m.Form.Exercises, index, field, value)
	if err != nil {
		return m, err
	}
	m.Form.Exercises = list
	return m, nil
}

func (m DayModal) Cancel() DayModal { return ClosedDayModal() }

// Submit works like PlannerModal.Submit.
func (m DayModal) Submit(commit func(DayModal) error) (DayModal, error) {
	if !m.IsOpen() {
		return m, ErrModalClosed
	}
	if err := commit(m); err != nil {
		return m, err
	}
	return ClosedDayModal(), nil
}

func (m DayModal) Title() string {
	action := "Add Workout"
	if m.State == StateEdit {
		action = "Edit Workout"
	}
	return m.Weekday.Label() + " - " + action
}

func (m DayModal) SubmitLabel() string {
	if m.State == StateEdit {
		return "Save Changes"
	}
	return "Add Workout"
}
