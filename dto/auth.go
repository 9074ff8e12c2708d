package dto

import "time"

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Telefono string `json:"telefono"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // username o email
	Password   string `json:"password" binding:"required"`
}

type UsuarioLoginResponse struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	Avatar        string    `json:"avatar"`
	Puntos        int       `json:"puntos"`
	Role          int       `json:"role"`
	FechaRegistro time.Time `json:"fecha_registro"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type GoogleUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verifiedEmail"`
	Picture       string `json:"picture"`
}
