package api

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/service"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler serves planners, their weekly schedule and sharing.
type PlannerHandler struct {
	plannerService  service.PlannerService
	scheduleService service.ScheduleService
	exportService   service.ExportService
	confirmations   service.ConfirmationBroker
	log             *zap.SugaredLogger
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(
	plannerService service.PlannerService,
	scheduleService service.ScheduleService,
	exportService service.ExportService,
	confirmations service.ConfirmationBroker,
	log *zap.SugaredLogger,
) *PlannerHandler {
	return &PlannerHandler{
		plannerService:  plannerService,
		scheduleService: scheduleService,
		exportService:   exportService,
		confirmations:   confirmations,
		log:             log,
	}
}

// --- DTOs ---

// PlannerRequest defines the expected JSON for creating or updating a planner.
type PlannerRequest struct {
	Name         string              `json:"name"`
	TargetGender domain.TargetGender `json:"targetGender"`
	Goal         domain.Goal         `json:"goal"`
}

// DayWorkoutRequest is the body of PUT /planners/{plannerId}/schedule/{weekday}.
type DayWorkoutRequest struct {
	Name      string            `json:"name"`
	Exercises []domain.Exercise `json:"exercises"`
}

type ExerciseResponse struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
	RestTime int    `json:"restTime"`
	Summary  string `json:"summary"` // "4×8 • 120s"
}

type DayWorkoutResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Exercises []ExerciseResponse `json:"exercises"`
}

// ScheduleDayResponse is one occupied weekday of a planner.
type ScheduleDayResponse struct {
	Weekday domain.Weekday     `json:"weekday"`
	Label   string             `json:"label"`
	Workout DayWorkoutResponse `json:"workout"`
}

type PlannerResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	TargetGender      domain.TargetGender   `json:"targetGender"`
	TargetGenderLabel string                `json:"targetGenderLabel"`
	Goal              domain.Goal           `json:"goal"`
	GoalLabel         string                `json:"goalLabel"`
	Schedule          []ScheduleDayResponse `json:"schedule"` // Week order, occupied days only
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

func MapDayWorkoutToResponse(w *domain.DayWorkout) DayWorkoutResponse {
	if w == nil {
		return DayWorkoutResponse{}
	}
	resp := DayWorkoutResponse{ID: w.ID, Name: w.Name, Exercises: make([]ExerciseResponse, len(w.Exercises))}
	for i, e := range w.Exercises {
		resp.Exercises[i] = ExerciseResponse{
			Name:     e.Name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			RestTime: e.RestTime,
			Summary:  service.ExerciseSummary(e),
		}
	}
	return resp
}

// MapPlannerToResponse converts a domain.WorkoutPlanner to PlannerResponse DTO.
func MapPlannerToResponse(p *domain.WorkoutPlanner) PlannerResponse {
	if p == nil {
		return PlannerResponse{}
	}
	resp := PlannerResponse{
		ID:                p.ID,
		Name:              p.Name,
		TargetGender:      p.TargetGender,
		TargetGenderLabel: p.TargetGender.Label(),
		Goal:              p.Goal,
		GoalLabel:         p.Goal.Label(),
		Schedule:          []ScheduleDayResponse{},
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	for _, day := range p.Schedule.Days() {
		w, _ := p.Schedule.Get(day)
		resp.Schedule = append(resp.Schedule, ScheduleDayResponse{
			Weekday: day,
			Label:   day.Label(),
			Workout: MapDayWorkoutToResponse(&w),
		})
	}
	return resp
}

func MapPlannersToResponse(planners []domain.WorkoutPlanner) []PlannerResponse {
	responses := make([]PlannerResponse, len(planners))
	for i := range planners {
		responses[i] = MapPlannerToResponse(&planners[i])
	}
	return responses
}

// --- Handler Methods ---

// ListPlanners godoc
// @Summary List planners
// @Tags Planners
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PlannerResponse
// @Router /planners [get]
func (h *PlannerHandler) ListPlanners(c *gin.Context) {
	planners, err := h.plannerService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapPlannersToResponse(planners))
}

// CreatePlanner godoc
// @Summary Create a planner
// @Description Creates a planner with an empty weekly schedule.
// @Tags Planners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planner body PlannerRequest true "Planner header"
// @Success 201 {object} PlannerResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /planners [post]
func (h *PlannerHandler) CreatePlanner(c *gin.Context) {
	var req PlannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	planner, err := h.plannerService.Create(c.Request.Context(), service.PlannerInput(req))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MapPlannerToResponse(planner))
}

// GetPlanner godoc
// @Summary Get a planner
// @Tags Planners
// @Produce json
// @Security BearerAuth
// @Param plannerId path string true "Planner ID"
// @Success 200 {object} PlannerResponse
// @Failure 404 {object} gin.H "Planner not found"
// @Router /planners/{plannerId} [get]
func (h *PlannerHandler) GetPlanner(c *gin.Context) {
	planner, err := h.plannerService.Get(c.Request.Context(), c.Param("plannerId"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapPlannerToResponse(planner))
}

// UpdatePlanner godoc
// @Summary Update a planner
// @Description Replaces name, target gender and goal. The schedule is kept.
// @Tags Planners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plannerId path string true "Planner ID"
// @Param planner body PlannerRequest true "Planner header"
// @Success 200 {object} PlannerResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Planner not found"
// @Router /planners/{plannerId} [put]
func (h *PlannerHandler) UpdatePlanner(c *gin.Context) {
	var req PlannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	planner, err := h.plannerService.Update(c.Request.Context(), c.Param("plannerId"), service.PlannerInput(req))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapPlannerToResponse(planner))
}

// DeletePlanner godoc
// @Summary Request planner deletion
// @Description Parks the deletion until it is confirmed through /confirmations/{confirmationId}.
// @Tags Planners
// @Produce json
// @Security BearerAuth
// @Param plannerId path string true "Planner ID"
// @Success 202 {object} service.PendingConfirmation
// @Failure 404 {object} gin.H "Planner not found"
// @Router /planners/{plannerId} [delete]
func (h *PlannerHandler) DeletePlanner(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}
	plannerID := c.Param("plannerId")
	if _, err := h.plannerService.Get(c.Request.Context(), plannerID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	pending := h.confirmations.Request(userID, service.DeletePlannerPrompt, func(ctx context.Context) error {
		_, err := h.plannerService.Delete(ctx, plannerID, service.AlwaysConfirm)
		return err
	})
	c.JSON(http.StatusAccepted, pending)
}

// ListWeekdays godoc
// @Summary Schedule slots
// @Description Weekdays in display order with their labels.
// @Tags Planners
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.WeekdayInfo
// @Router /weekdays [get]
func (h *PlannerHandler) ListWeekdays(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduleService.Weekdays())
}

// GetDay godoc
// @Summary Get a day's workout
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param plannerId path string true "Planner ID"
// @Param weekday path string true "Weekday key (monday..sunday)"
// @Success 200 {object} DayWorkoutResponse
// @Failure 404 {object} gin.H "Planner not found or no workout on that day"
// @Router /planners/{plannerId}/schedule/{weekday} [get]
func (h *PlannerHandler) GetDay(c *gin.Context) {
	day, ok := parseWeekdayParam(c)
	if !ok {
		return
	}
	workout, present, err := h.scheduleService.GetDay(c.Request.Context(), c.Param("plannerId"), day)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if !present {
		abortWithError(c, http.StatusNotFound, "No workout scheduled on "+day.Label())
		return
	}
	c.JSON(http.StatusOK, MapDayWorkoutToResponse(workout))
}

// SetDay godoc
// @Summary Set a day's workout
// @Description Stores the workout for the weekday, keeping the workout ID when the day was already set.
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plannerId path string true "Planner ID"
// @Param weekday path string true "Weekday key (monday..sunday)"
// @Param workout body DayWorkoutRequest true "Workout"
// @Success 200 {object} DayWorkoutResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Planner not found"
// @Router /planners/{plannerId}/schedule/{weekday} [put]
func (h *PlannerHandler) SetDay(c *gin.Context) {
	day, ok := parseWeekdayParam(c)
	if !ok {
		return
	}
	var req DayWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	workout, err := h.scheduleService.SetDay(c.Request.Context(), c.Param("plannerId"), day, dayFormFromRequest(req))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapDayWorkoutToResponse(workout))
}

// RemoveDay godoc
// @Summary Request removal of a day's workout
// @Description An empty day answers 204 straight away. Otherwise the removal waits for confirmation.
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param plannerId path string true "Planner ID"
// @Param weekday path string true "Weekday key (monday..sunday)"
// @Success 202 {object} service.PendingConfirmation
// @Success 204 "Nothing to remove"
// @Failure 404 {object} gin.H "Planner not found"
// @Router /planners/{plannerId}/schedule/{weekday} [delete]
func (h *PlannerHandler) RemoveDay(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}
	day, ok := parseWeekdayParam(c)
	if !ok {
		return
	}
	plannerID := c.Param("plannerId")
	_, present, err := h.scheduleService.GetDay(c.Request.Context(), plannerID, day)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if !present {
		c.Status(http.StatusNoContent)
		return
	}

	pending := h.confirmations.Request(userID, service.RemoveDayPrompt, func(ctx context.Context) error {
		_, err := h.scheduleService.RemoveDay(ctx, plannerID, day, service.AlwaysConfirm)
		return err
	})
	c.JSON(http.StatusAccepted, pending)
}

// SharePlanner godoc
// @Summary Share a planner
// @Description Uploads a printable copy of the planner and returns a temporary download link.
// @Tags Planners
// @Produce json
// @Security BearerAuth
// @Param plannerId path string true "Planner ID"
// @Success 201 {object} service.SharedPlanner
// @Failure 404 {object} gin.H "Planner not found"
// @Failure 503 {object} gin.H "Sharing is not configured"
// @Router /planners/{plannerId}/share [post]
func (h *PlannerHandler) SharePlanner(c *gin.Context) {
	shared, err := h.exportService.SharePlanner(c.Request.Context(), c.Param("plannerId"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, shared)
}
