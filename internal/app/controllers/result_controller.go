package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentrecords/backend/internal/app/models/dto"
	"github.com/studentrecords/backend/internal/app/services"
	"github.com/studentrecords/backend/internal/middleware"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
)

// ResultController serves read-only result sheet lookups
type ResultController struct {
	resultService *services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService *services.ResultService) *ResultController {
	return &ResultController{
		resultService: resultService,
	}
}

// GetResultByStudentID fetches the result sheet for one student.
// GET /api/results/:studentId
func (c *ResultController) GetResultByStudentID(ctx *gin.Context) {
	result, err := c.resultService.GetByStudentID(ctx, ctx.Param("studentId"))
	if err != nil {
		// This route's error envelope carries an explicit success flag
		if errors.Is(err, apperrors.ErrNotFound) {
			success := false
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Msg:     err.Error(),
				Success: &success,
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResultResponse{
		Success: true,
		Data:    result,
	})
}
