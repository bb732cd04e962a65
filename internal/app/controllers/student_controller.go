package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studentrecords/backend/internal/app/models/dto"
	"github.com/studentrecords/backend/internal/app/services"
	"github.com/studentrecords/backend/internal/middleware"
)

// StudentController handles roster management and student self-service
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetAllStudents lists the roster sorted by name.
// GET /api/students
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// CreateStudent registers a new student from an admin submission.
// POST /api/students
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// DeleteStudent removes a student by id.
// DELETE /api/students/:id
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := c.studentService.Delete(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteStudentResponse{
		Msg: "Student removed",
		ID:  id,
	})
}

// Login authenticates a student and returns their record, password stripped.
// POST /api/students/login
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student login payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentLoginResponse{
		Success: true,
		Student: student,
	})
}

// GetProfile fetches one student's record for the student dashboard.
// GET /api/students/profile/:id
func (c *StudentController) GetProfile(ctx *gin.Context) {
	student, err := c.studentService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// ClearStudents wipes the roster. Debugging aid carried over from the
// original deployment; not part of the admin UI.
// GET /api/students/clear
func (c *StudentController) ClearStudents(ctx *gin.Context) {
	count, err := c.studentService.Clear(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Msg: fmt.Sprintf("All students cleared from database (%d removed)", count),
	})
}
