package dto

import "time"

// CreateUserRequest cuerpo de POST /api/users.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // default Telecaller
}

// UpdateUserRequest cuerpo de PUT /api/users/:id. Password vacío = no cambiar.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse representación de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest cuerpo de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
