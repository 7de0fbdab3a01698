package dto

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ViewResponse describes the screen served at the site root.
type ViewResponse struct {
	View    string `json:"view"`
	Landing any    `json:"landing,omitempty"`
}
