package api

import (
	"alcyxob/trainer-console/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services bundles what the HTTP layer needs.
type Services struct {
	Auth          service.AuthService
	Planners      service.PlannerService
	Schedules     service.ScheduleService
	Editor        service.EditorService
	Students      service.StudentService
	Export        service.ExportService
	Confirmations service.ConfirmationBroker
}

func SetupRoutes(router *gin.Engine, jwtSecret string, svc Services, log *zap.SugaredLogger) {
	authHandler := NewAuthHandler(svc.Auth)
	plannerHandler := NewPlannerHandler(svc.Planners, svc.Schedules, svc.Export, svc.Confirmations, log)
	editorHandler := NewEditorHandler(svc.Editor, log)
	studentHandler := NewStudentHandler(svc.Students, svc.Confirmations, log)
	confirmationHandler := NewConfirmationHandler(svc.Confirmations, log)

	authMiddleware := AuthMiddleware(jwtSecret, svc.Auth)

	router.Use(RequestIDMiddleware(), RequestLogger(log))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)
		protected.GET("/weekdays", plannerHandler.ListWeekdays)

		// --- Planner Routes ---
		plannerGroup := protected.Group("/planners")
		{
			plannerGroup.GET("", plannerHandler.ListPlanners)
			plannerGroup.POST("", plannerHandler.CreatePlanner)
			plannerGroup.GET("/:plannerId", plannerHandler.GetPlanner)
			plannerGroup.PUT("/:plannerId", plannerHandler.UpdatePlanner)
			plannerGroup.DELETE("/:plannerId", plannerHandler.DeletePlanner)

			plannerGroup.GET("/:plannerId/schedule/:weekday", plannerHandler.GetDay)
			plannerGroup.PUT("/:plannerId/schedule/:weekday", plannerHandler.SetDay)
			plannerGroup.DELETE("/:plannerId/schedule/:weekday", plannerHandler.RemoveDay)

			plannerGroup.POST("/:plannerId/share", plannerHandler.SharePlanner)
		}

		protected.POST("/confirmations/:confirmationId", confirmationHandler.ResolveConfirmation)

		// --- Editor Routes ---
		editorGroup := protected.Group("/editor")
		{
			editorGroup.GET("/planner", editorHandler.GetPlannerModal)
			editorGroup.POST("/planner", editorHandler.OpenPlannerModal)
			editorGroup.PUT("/planner", editorHandler.EditPlannerModal)
			editorGroup.DELETE("/planner", editorHandler.CancelPlannerModal)
			editorGroup.POST("/planner/submit", editorHandler.SubmitPlannerModal)

			editorGroup.GET("/day", editorHandler.GetDayModal)
			editorGroup.POST("/day", editorHandler.OpenDayModal)
			editorGroup.PUT("/day", editorHandler.RenameDayModal)
			editorGroup.DELETE("/day", editorHandler.CancelDayModal)
			editorGroup.POST("/day/exercises", editorHandler.AppendExercise)
			editorGroup.PATCH("/day/exercises/:index", editorHandler.SetExerciseField)
			editorGroup.DELETE("/day/exercises/:index", editorHandler.RemoveExercise)
			editorGroup.POST("/day/submit", editorHandler.SubmitDayModal)
		}

		// --- Student Routes ---
		studentGroup := protected.Group("/students")
		{
			studentGroup.GET("", studentHandler.ListStudents)
			studentGroup.POST("", studentHandler.CreateStudent)
			studentGroup.GET("/:studentId", studentHandler.GetStudent)
			studentGroup.PUT("/:studentId", studentHandler.UpdateStudent)
			studentGroup.DELETE("/:studentId", studentHandler.DeleteStudent)
		}
	}
}
