package dto

import (
	"github.com/studentrecords/backend/internal/app/models"
)

// ResultResponse wraps a result sheet lookup
type ResultResponse struct {
	Success bool           `json:"success"`
	Data    *models.Result `json:"data"`
}
