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

// StudentHandler holds the student service dependency.
type StudentHandler struct {
	studentService service.StudentService
	confirmations  service.ConfirmationBroker
	log            *zap.SugaredLogger
}

func NewStudentHandler(studentService service.StudentService, confirmations service.ConfirmationBroker, log *zap.SugaredLogger) *StudentHandler {
	return &StudentHandler{studentService: studentService, confirmations: confirmations, log: log}
}

// StudentRequest defines the expected JSON for creating or updating a student.
type StudentRequest struct {
	Name   string        `json:"name"`
	Age    int           `json:"age"`
	Weight float64       `json:"weight"` // kg
	Height float64       `json:"height"` // m
	Gender domain.Gender `json:"gender"`
	Phone  string        `json:"phone"`
}

type StudentResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Age       int           `json:"age"`
	Weight    float64       `json:"weight"`
	Height    float64       `json:"height"`
	BMI       float64       `json:"bmi"`
	Gender    domain.Gender `json:"gender"`
	Phone     string        `json:"phone"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func MapStudentToResponse(s *domain.Student) StudentResponse {
	if s == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Age:       s.Age,
		Weight:    s.Weight,
		Height:    s.Height,
		BMI:       s.BMI(),
		Gender:    s.Gender,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func MapStudentsToResponse(students []domain.Student) []StudentResponse {
	responses := make([]StudentResponse, len(students))
	for i := range students {
		responses[i] = MapStudentToResponse(&students[i])
	}
	return responses
}

// ListStudents godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} StudentResponse
// @Router /students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapStudentsToResponse(students))
}

// CreateStudent godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student body StudentRequest true "Student details"
// @Success 201 {object} StudentResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	student, err := h.studentService.Create(c.Request.Context(), service.StudentInput(req))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MapStudentToResponse(student))
}

// GetStudent godoc
// @Summary Get a student
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} StudentResponse
// @Failure 404 {object} gin.H "Student not found"
// @Router /students/{studentId} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.studentService.Get(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapStudentToResponse(student))
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param student body StudentRequest true "Student details"
// @Success 200 {object} StudentResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Student not found"
// @Router /students/{studentId} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	student, err := h.studentService.Update(c.Request.Context(), c.Param("studentId"), service.StudentInput(req))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapStudentToResponse(student))
}

// DeleteStudent godoc
// @Summary Request student deletion
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 202 {object} service.PendingConfirmation
// @Failure 404 {object} gin.H "Student not found"
// @Router /students/{studentId} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}
	studentID := c.Param("studentId")
	if _, err := h.studentService.Get(c.Request.Context(), studentID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	pending := h.confirmations.Request(userID, service.DeleteStudentPrompt, func(ctx context.Context) error {
		_, err := h.studentService.Delete(ctx, studentID, service.AlwaysConfirm)
		return err
	})
	c.JSON(http.StatusAccepted, pending)
}
