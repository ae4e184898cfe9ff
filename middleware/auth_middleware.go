package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/services"
	"go.uber.org/zap"
)

// Context keys set by the authentication middleware.
const (
	ChaveUsuarioID   = "usuarioId"
	ChaveNomeUsuario = "nomeUsuario"
)

// Autenticacao gates every protected route. It requires an
// "Authorization: Bearer <token>" header, with a case-insensitive scheme and
// exactly two parts; any failure answers 401 with a generic message.
// On success the decoded principal is attached to the request context.
func Autenticacao(auth *services.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			logger.Warn("autenticação: cabeçalho Authorization ausente",
				zap.String("rota", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}

		partes := strings.Split(header, " ")
		if len(partes) != 2 || !strings.EqualFold(partes[0], "Bearer") {
			logger.Warn("autenticação: cabeçalho Authorization malformado",
				zap.String("rota", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}

		claims, err := auth.ValidarToken(partes[1])
		if err != nil {
			logger.Warn("autenticação: token inválido",
				zap.String("rota", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}

		c.Set(ChaveUsuarioID, claims.UsuarioID)
		c.Set(ChaveNomeUsuario, claims.NomeUsuario)
		c.Next()
	}
}
