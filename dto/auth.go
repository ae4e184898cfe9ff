package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/marcosmapl/studium-backend-sub002/models"
)

// TokenClaims represents our custom JWT claims.
type TokenClaims struct {
	UsuarioID   uint   `json:"usuarioId"`
	NomeUsuario string `json:"nomeUsuario"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials.
type LoginRequest struct {
	NomeUsuario string `json:"nomeUsuario" binding:"required"`
	Senha       string `json:"senha" binding:"required"`
}

// LoginResponse represents the response after authentication. The user's
// password hash is never serialized.
type LoginResponse struct {
	Usuario  models.Usuario `json:"usuario"`
	Token    string         `json:"token"`
	ExpiraEm time.Time      `json:"expiraEm"`
}
