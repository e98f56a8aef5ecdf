package repository

import (
	"alcyxob/trainer-console/internal/domain" // Import our defined domain models
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PlannerRepository defines the interface for the workout planner collection.
// Implementations hand out copies: mutating a returned planner never changes stored state.
type PlannerRepository interface {
	Create(ctx context.Context, planner *domain.WorkoutPlanner) (string, error)
	GetByID(ctx context.Context, id string) (*domain.WorkoutPlanner, error)
	List(ctx context.Context) ([]domain.WorkoutPlanner, error) // Insertion order
	Update(ctx context.Context, planner *domain.WorkoutPlanner) error // Header fields only; schedule is kept
	Delete(ctx context.Context, id string) error

	// PutDay stores workout at day. An occupied slot keeps its DayWorkout ID,
	// an empty one gets a fresh ID. Returns the stored workout.
	PutDay(ctx context.Context, plannerID string, day domain.Weekday, workout domain.DayWorkout) (*domain.DayWorkout, error)
	// RemoveDay clears the slot. Clearing an empty slot is not an error.
	RemoveDay(ctx context.Context, plannerID string, day domain.Weekday) error
}

// StudentRepository defines the interface for the student collection.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id string) error
}

// UserRepository defines the interface for trainer accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error) // ErrDuplicate when the email is taken
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
