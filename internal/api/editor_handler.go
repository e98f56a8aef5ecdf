package api

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/draft"
	"alcyxob/trainer-console/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EditorHandler exposes the per-trainer planner and day modals.
type EditorHandler struct {
	editorService service.EditorService
	log           *zap.SugaredLogger
}

func NewEditorHandler(editorService service.EditorService, log *zap.SugaredLogger) *EditorHandler {
	return &EditorHandler{editorService: editorService, log: log}
}

// --- DTOs ---

type OpenPlannerModalRequest struct {
	PlannerID string `json:"plannerId"` // Empty opens the create form
}

type OpenDayModalRequest struct {
	PlannerID string `json:"plannerId" binding:"required"`
	Weekday   string `json:"weekday" binding:"required"`
}

type RenameDayRequest struct {
	Name string `json:"name"`
}

type SetExerciseFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

type PlannerModalResponse struct {
	State       draft.State       `json:"state"`
	PlannerID   string            `json:"plannerId,omitempty"`
	Form        draft.PlannerForm `json:"form"`
	Title       string            `json:"title,omitempty"`
	SubmitLabel string            `json:"submitLabel,omitempty"`
}

type DayModalResponse struct {
	State       draft.State       `json:"state"`
	PlannerID   string            `json:"plannerId,omitempty"`
	Weekday     domain.Weekday    `json:"weekday,omitempty"`
	Name        string            `json:"name"`
	Exercises   []domain.Exercise `json:"exercises"`
	Title       string            `json:"title,omitempty"`
	SubmitLabel string            `json:"submitLabel,omitempty"`
}

func MapPlannerModalToResponse(m draft.PlannerModal) PlannerModalResponse {
	resp := PlannerModalResponse{State: m.State, PlannerID: m.PlannerID, Form: m.Form}
	if m.IsOpen() {
		resp.Title = m.Title()
		resp.SubmitLabel = m.SubmitLabel()
	}
	return resp
}

func MapDayModalToResponse(m draft.DayModal) DayModalResponse {
	resp := DayModalResponse{
		State:     m.State,
		PlannerID: m.PlannerID,
		Weekday:   m.Weekday,
		Name:      m.Form.Name,
		Exercises: domain.CloneExercises(m.Form.Exercises),
	}
	if m.IsOpen() {
		resp.Title = m.Title()
		resp.SubmitLabel = m.SubmitLabel()
	}
	return resp
}

func dayFormFromRequest(req DayWorkoutRequest) draft.DayForm {
	return draft.DayForm{Name: req.Name, Exercises: req.Exercises}
}

// editorUser resolves the trainer whose modals the request addresses.
func editorUser(c *gin.Context) (string, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return "", false
	}
	return userID, true
}

// --- Planner modal ---

// GetPlannerModal godoc
// @Summary Current planner modal
// @Tags Editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PlannerModalResponse
// @Router /editor/planner [get]
func (h *EditorHandler) GetPlannerModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MapPlannerModalToResponse(h.editorService.PlannerModal(userID)))
}

// OpenPlannerModal godoc
// @Summary Open the planner modal
// @Description Opens the create form, or the edit form prefilled from plannerId.
// @Tags Editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OpenPlannerModalRequest false "Planner to edit"
// @Success 200 {object} PlannerModalResponse
// @Failure 404 {object} gin.H "Planner not found"
// @Router /editor/planner [post]
func (h *EditorHandler) OpenPlannerModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	var req OpenPlannerModalRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}
	modal, err := h.editorService.OpenPlanner(c.Request.Context(), userID, req.PlannerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapPlannerModalToResponse(modal))
}

// EditPlannerModal godoc
// @Summary Edit the planner form
// @Tags Editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form body draft.PlannerForm true "Form fields"
// @Success 200 {object} PlannerModalResponse
// @Failure 409 {object} gin.H "Modal is not open"
// @Router /editor/planner [put]
func (h *EditorHandler) EditPlannerModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	var form draft.PlannerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	modal, err := h.editorService.EditPlanner(userID, form)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapPlannerModalToResponse(modal))
}

// CancelPlannerModal godoc
// @Summary Close the planner modal without saving
// @Tags Editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PlannerModalResponse
// @Router /editor/planner [delete]
func (h *EditorHandler) CancelPlannerModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MapPlannerModalToResponse(h.editorService.CancelPlanner(userID)))
}

// SubmitPlannerModal godoc
// @Summary Save the planner modal
// @Description Creates or updates the planner. A rejected form keeps the modal open.
// @Tags Editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PlannerResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Modal is not open"
// @Router /editor/planner/submit [post]
func (h *EditorHandler) SubmitPlannerModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	planner, _, err := h.editorService.SubmitPlanner(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapPlannerToResponse(planner))
}

// --- Day modal ---

// GetDayModal godoc
// @Summary Current day modal
// @Tags Editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DayModalResponse
// @Router /editor/day [get]
func (h *EditorHandler) GetDayModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MapDayModalToResponse(h.editorService.DayModal(userID)))
}

// OpenDayModal godoc
// @Summary Open the day modal
// @Description Prefilled from the weekday's workout when there is one.
// @Tags Editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OpenDayModalRequest true "Planner and weekday"
// @Success 200 {object} DayModalResponse
// @Failure 400 {object} gin.H "Invalid weekday"
// @Failure 404 {object} gin.H "Planner not found"
// @Router /editor/day [post]
func (h *EditorHandler) OpenDayModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	var req OpenDayModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	day, err := domain.ParseWeekday(req.Weekday)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid weekday: "+req.Weekday)
		return
	}
	modal, err := h.editorService.OpenDay(c.Request.Context(), userID, req.PlannerID, day)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapDayModalToResponse(modal))
}

// RenameDayModal godoc
// @Summary Set the workout name in the day modal
// @Tags Editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RenameDayRequest true "Workout name"
// @Success 200 {object} DayModalResponse
// @Failure 409 {object} gin.H "Modal is not open"
// @Router /editor/day [put]
func (h *EditorHandler) RenameDayModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	var req RenameDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	modal, err := h.editorService.RenameDay(userID, req.Name)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapDayModalToResponse(modal))
}

// CancelDayModal godoc
// @Summary Close the day modal without saving
// @Tags Editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DayModalResponse
// @Router /editor/day [delete]
func (h *EditorHandler) CancelDayModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MapDayModalToResponse(h.editorService.CancelDay(userID)))
}

// AppendExercise godoc
// @Summary Add an exercise row
// @Description Appends a default row (3 sets, 12 reps, 60s rest).
// @Tags Editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DayModalResponse
// @Failure 409 {object} gin.H "Modal is not open"
// @Router /editor/day/exercises [post]
func (h *EditorHandler) AppendExercise(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	modal, err := h.editorService.AppendExercise(userID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapDayModalToResponse(modal))
}

// SetExerciseField godoc
// @Summary Edit one field of an exercise row
// @Tags Editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Row index"
// @Param request body SetExerciseFieldRequest true "Field and value"
// @Success 200 {object} DayModalResponse
// @Failure 400 {object} gin.H "Unknown field or bad value"
// @Failure 404 {object} gin.H "No such row"
// @Failure 409 {object} gin.H "Modal is not open"
// @Router /editor/day/exercises/{index} [patch]
func (h *EditorHandler) SetExerciseField(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	index, ok := parseIndexParam(c)
	if !ok {
		return
	}
	var req SetExerciseFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	field, err := draft.ParseExerciseField(req.Field)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	modal, err := h.editorService.SetExerciseField(userID, index, field, req.Value)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapDayModalToResponse(modal))
}

// RemoveExercise godoc
// @Summary Remove an exercise row
// @Tags Editor
// @Produce json
// @Security BearerAuth
// @Param index path int true "Row index"
// @Success 200 {object} DayModalResponse
// @Failure 404 {object} gin.H "No such row"
// @Failure 409 {object} gin.H "Modal is not open"
// @Router /editor/day/exercises/{index} [delete]
func (h *EditorHandler) RemoveExercise(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	index, ok := parseIndexParam(c)
	if !ok {
		return
	}
	modal, err := h.editorService.RemoveExercise(userID, index)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapDayModalToResponse(modal))
}

// SubmitDayModal godoc
// @Summary Save the day modal
// @Description Stores the workout on the modal's weekday. A rejected form keeps the modal open.
// @Tags Editor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DayWorkoutResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Modal is not open"
// @Router /editor/day/submit [post]
func (h *EditorHandler) SubmitDayModal(c *gin.Context) {
	userID, ok := editorUser(c)
	if !ok {
		return
	}
	workout, _, err := h.editorService.SubmitDay(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapDayWorkoutToResponse(workout))
}

func parseIndexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise index: "+c.Param("index"))
		return 0, false
	}
	return index, true
}
