package dto

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RegisterRequest cuerpo de POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResponse token JWT más los datos básicos del usuario autenticado.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
