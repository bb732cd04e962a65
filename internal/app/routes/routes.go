package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentrecords/backend/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	resultController *controllers.ResultController,
) {
	// Liveness probe for the client and deploy checks
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API Running")
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	students := api.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.POST("/login", studentController.Login)
		students.GET("/profile/:id", studentController.GetProfile)
		students.GET("/clear", studentController.ClearStudents)
	}

	results := api.Group("/results")
	{
		results.GET("/:studentId", resultController.GetResultByStudentID)
	}
}
