package dto

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse carries the simulated user id and the canned token.
type RegisterResponse struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
}

// LoginResponse carries only the canned token.
type LoginResponse struct {
	Token string `json:"token"`
}
