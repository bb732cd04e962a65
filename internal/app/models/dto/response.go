package dto

// MessageResponse is the standard success envelope
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the standard error envelope. Missing and Errors carry
// validation detail; Error carries internal detail on server faults.
type ErrorResponse struct {
	Msg     string   `json:"msg"`
	Missing []string `json:"missing,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Success *bool    `json:"success,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// NewErrorResponse creates a plain error envelope with a message
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Msg: msg}
}
