package service

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrStorageUnavailable = errors.New("planner sharing is not configured")

// PlannerDocument is the printable form of a planner handed to students.
type PlannerDocument struct {
	Name         string        `yaml:"name"`
	TargetGender string        `yaml:"targetGender"`
	Goal         string        `yaml:"goal"`
	Days         []DayDocument `yaml:"days"`
}

type DayDocument struct {
	Weekday   domain.Weekday     `yaml:"weekday"`
	Label     string             `yaml:"label"`
	Workout   string             `yaml:"workout"`
	Exercises []ExerciseDocument `yaml:"exercises"`
}

type ExerciseDocument struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"` // e.g. "4×8 • 120s"
}

// SharedPlanner is the result of a share: where the document lives and until when the link works.
type SharedPlanner struct {
	ObjectKey string    `json:"objectKey"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExerciseSummary renders an exercise the way the planner cards show it.
func ExerciseSummary(e domain.Exercise) string {
	return fmt.Sprintf("%d×%d • %ds", e.Sets, e.Reps, e.RestTime)
}

// NewPlannerDocument lays out p's occupied days in week order.
func NewPlannerDocument(p *domain.WorkoutPlanner) PlannerDocument {
	doc := PlannerDocument{
		Name:         p.Name,
		TargetGender: p.TargetGender.Label(),
		Goal:         p.Goal.Label(),
		Days:         []DayDocument{},
	}
	for _, day := range p.Schedule.Days() {
		w, _ := p.Schedule.Get(day)
		dd := DayDocument{Weekday: day, Label: day.Label(), Workout: w.Name, Exercises: []ExerciseDocument{}}
		for _, e := range w.Exercises {
			dd.Exercises = append(dd.Exercises, ExerciseDocument{Name: e.Name, Summary: ExerciseSummary(e)})
		}
		doc.Days = append(doc.Days, dd)
	}
	return doc
}

// RenderPlanner encodes p as a YAML document.
func RenderPlanner(p *domain.WorkoutPlanner) ([]byte, error) {
	return yaml.Marshal(NewPlannerDocument(p))
}

type ExportService interface {
	SharePlanner(ctx context.Context, plannerID string) (*SharedPlanner, error)
}

type exportService struct {
	planners   PlannerService
	files      storage.FileStorage
	linkExpiry time.Duration
	log        *zap.SugaredLogger
}

// NewExportService creates the sharing service. Pass storage.Disabled{} when no bucket is configured.
func NewExportService(planners PlannerService, files storage.FileStorage, linkExpiry time.Duration, log *zap.SugaredLogger) ExportService {
	if linkExpiry <= 0 {
		linkExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{planners: planners, files: files, linkExpiry: linkExpiry, log: log}
}

// SharePlanner uploads the rendered planner and returns a temporary download link.
func (s *exportService) SharePlanner(ctx context.Context, plannerID string) (*SharedPlanner, error) {
	planner, err := s.planners.Get(ctx, plannerID)
	if err != nil {
		return nil, err
	}
	body, err := RenderPlanner(planner)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("planners/%s/%s.yaml", planner.ID, uuid.NewString())
	if err := s.files.PutObject(ctx, key, "application/yaml", body); err != nil {
		if errors.Is(err, storage.ErrStorageDisabled) {
			return nil, ErrStorageUnavailable
		}
		return nil, err
	}
	url, err := s.files.GeneratePresignedDownloadURL(ctx, key, s.linkExpiry)
	if err != nil {
		return nil, err
	}

	s.log.Infow("planner shared", "plannerId", planner.ID, "key", key)
	return &SharedPlanner{ObjectKey: key, URL: url, ExpiresAt: time.Now().Add(s.linkExpiry)}, nil
}
