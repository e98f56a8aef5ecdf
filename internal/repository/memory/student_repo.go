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

// studentRepository implements repository.StudentRepository in process memory.
type studentRepository struct {
	mu       sync.RWMutex
	ids      idgen.Generator
	students []domain.Student
}

func NewStudentRepository(ids idgen.Generator) repository.StudentRepository {
	return &studentRepository{ids: ids}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) (string, error) {
	if student.Name == "" {
		return "", errors.New("student requires a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	student.ID = r.ids.NewID()
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	r.students = append(r.students, *student)
	return student.ID, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	s := r.students[i]
	return &s, nil
}

func (r *studentRepository) List(ctx context.Context) ([]domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Student, len(r.students))
	copy(out, r.students)
	return out, nil
}

func (r *studentRepository) Update(ctx context.Context, student *domain.Student) error {
	if student.ID == "" {
		return errors.New("student ID is required for update")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(student.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	next := *student
	next.CreatedAt = r.students[i].CreatedAt
	next.UpdatedAt = time.Now().UTC()
	r.students[i] = next
	student.CreatedAt = next.CreatedAt
	student.UpdatedAt = next.UpdatedAt
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.students = append(r.students[:i:i], r.students[i+1:]...)
	return nil
}

func (r *studentRepository) indexOf(id string) int {
	for i, s := range r.students {
		if s.ID == id {
			return i
		}
	}
	return -1
}
