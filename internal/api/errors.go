package api

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/draft"
	"alcyxob/trainer-console/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps a service error to its HTTP status. Unknown errors
// are logged and reported as 500 without detail.
func respondServiceError(c *gin.Context, log *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, domain.ErrInvalidWeekday),
		errors.Is(err, draft.ErrUnknownField),
		errors.Is(err, draft.ErrInvalidValue):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPlannerNotFound),
		errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrConfirmationNotFound),
		errors.Is(err, draft.ErrIndexOutOfRange):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEditorClosed):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrStorageUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		log.Errorw("unexpected error", "path", c.FullPath(), "request_id", c.GetString(ContextRequestIDKey), "error", err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// parseWeekdayParam reads the :weekday path parameter, answering 400 itself on failure.
func parseWeekdayParam(c *gin.Context) (domain.Weekday, bool) {
	day, err := domain.ParseWeekday(c.Param("weekday"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid weekday: "+c.Param("weekday"))
		return "", false
	}
	return day, true
}
