package dto

import (
	"github.com/studentrecords/backend/internal/app/models"
)

// CreateStudentRequest is the admin payload for registering a student.
// CurrentSemester is left untyped so both numeric and string form-submitted
// values reach the validation rules instead of failing JSON binding.
type CreateStudentRequest struct {
	Name            string      `json:"name"`
	RollNumber      string      `json:"rollNumber"`
	Email           string      `json:"email"`
	PhoneNumber     string      `json:"phoneNumber"`
	CurrentSemester interface{} `json:"currentSemester"`
	Program         string      `json:"program"`
}

// Candidate converts the request into the field map the rule engine consumes
func (r *CreateStudentRequest) Candidate() map[string]any {
	return map[string]any{
		"name":            r.Name,
		"rollNumber":      r.RollNumber,
		"email":           r.Email,
		"phoneNumber":     r.PhoneNumber,
		"currentSemester": r.CurrentSemester,
		"program":         r.Program,
	}
}

// DeleteStudentResponse confirms a roster removal
type DeleteStudentResponse struct {
	Msg string `json:"msg"`
	ID  string `json:"id"`
}

// StudentLoginResponse returns the authenticated student's record,
// password stripped
type StudentLoginResponse struct {
	Success bool            `json:"success"`
	Student *models.Student `json:"student"`
}
