package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/dto"
	"github.com/marcosmapl/studium-backend-sub002/services"
	"go.uber.org/zap"
)

// AuthController handles login and logout.
type AuthController struct {
	auth   *services.AuthService
	logger *zap.Logger
}

// NewAuthController creates a new authentication controller.
func NewAuthController(auth *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, logger: logger}
}

// Login handles user authentication.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	resposta, err := ac.auth.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCredenciaisInvalidas):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUsuarioBloqueado), errors.Is(err, services.ErrUsuarioInativo):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ac.logger.Error("login: erro inesperado", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Erro interno do servidor",
				"details": err.Error(),
			})
		}
		return
	}

	// Set token as HttpOnly cookie for browser clients; the body also
	// carries it for clients that prefer Bearer auth.
	c.SetCookie(
		"access_token",
		resposta.Token,
		int(time.Until(resposta.ExpiraEm).Seconds()),
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, resposta)
}

// Logout handles user logout.
func (ac *AuthController) Logout(c *gin.Context) {
	// Clear the cookie by setting max-age to -1 (expired)
	c.SetCookie(
		"access_token",
		"",
		-1,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada"})
}
