package dto

// RegisterRequest is the admin registration payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the credential payload for admin and student login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse reports a successful admin login
type LoginResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}
