package service

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/repository"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var ErrStudentNotFound = errors.New("student not found")

// StudentInput carries the editable fields of a student.
type StudentInput struct {
	Name   string
	Age    int
	Weight float64
	Height float64
	Gender domain.Gender
	Phone  string
}

type StudentService interface {
	Create(ctx context.Context, input StudentInput) (*domain.Student, error)
	Update(ctx context.Context, studentID string, input StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, studentID string, confirm Confirmer) (bool, error)
	Get(ctx context.Context, studentID string) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	log         *zap.SugaredLogger
}

func NewStudentService(studentRepo repository.StudentRepository, log *zap.SugaredLogger) StudentService {
	return &studentService{studentRepo: studentRepo, log: log}
}

// newStudent validates input; the phone is stored in display form.
func newStudent(input StudentInput) (*domain.Student, error) {
	student := &domain.Student{
		Name:   strings.TrimSpace(input.Name),
		Age:    input.Age,
		Weight: input.Weight,
		Height: input.Height,
		Gender: input.Gender,
		Phone:  domain.FormatPhoneNumber(strings.TrimSpace(input.Phone)),
	}
	if err := student.Validate(); err != nil {
		return nil, validationError(err)
	}
	return student, nil
}

func (s *studentService) Create(ctx context.Context, input StudentInput) (*domain.Student, error) {
	student, err := newStudent(input)
	if err != nil {
		s.log.Warnw("rejected student", "error", err)
		return nil, err
	}
	if _, err := s.studentRepo.Create(ctx, student); err != nil {
		s.log.Errorw("failed to create student", "error", err)
		return nil, err
	}
	s.log.Infow("student created", "studentId", student.ID)
	return student, nil
}

func (s *studentService) Update(ctx context.Context, studentID string, input StudentInput) (*domain.Student, error) {
	student, err := newStudent(input)
	if err != nil {
		s.log.Warnw("rejected student update", "studentId", studentID, "error", err)
		return nil, err
	}
	student.ID = studentID
	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		s.log.Errorw("failed to update student", "studentId", studentID, "error", err)
		return nil, err
	}
	s.log.Infow("student updated", "studentId", studentID)
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, studentID string, confirm Confirmer) (bool, error) {
	if _, err := s.Get(ctx, studentID); err != nil {
		return false, err
	}
	ok, err := confirm.Confirm(ctx, DeleteStudentPrompt)
	if err != nil || !ok {
		return false, err
	}
	if err := s.studentRepo.Delete(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrStudentNotFound
		}
		return false, err
	}
	s.log.Infow("student deleted", "studentId", studentID)
	return true, nil
}

func (s *studentService) Get(ctx context.Context, studentID string) (*domain.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.studentRepo.List(ctx)
}
