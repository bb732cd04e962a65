package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentrecords/backend/internal/app/models/dto"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
	"github.com/studentrecords/backend/internal/pkg/logger"
)

// HandleAPIError translates domain errors to HTTP responses at the route
// boundary. Every domain error maps to 400/404; anything unrecognized is a
// server fault. Nothing is retried.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		if len(validationErr.Missing) > 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg:     "All fields are required",
				Missing: validationErr.Missing,
			})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg:    "Validation Error",
			Errors: validationErr.Problems,
		})
		return
	}

	var duplicateErr *apperrors.DuplicateError
	if errors.As(err, &duplicateErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(duplicateErr.Error()))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid credentials"))

	case errors.Is(err, apperrors.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled server error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Msg:   "Server Error",
			Error: err.Error(),
		})
	}
}
