package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/config"
	"github.com/marcosmapl/studium-backend-sub002/middleware"
	"github.com/marcosmapl/studium-backend-sub002/repositories"
	"github.com/marcosmapl/studium-backend-sub002/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencias carries everything route registration needs. All controllers
// and repositories are constructed here, explicitly, at process start.
type Dependencias struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *zap.Logger
}

// RegistrarRotas registers all API routes under the given group. Login is
// the only route outside the authentication gate.
func RegistrarRotas(api *gin.RouterGroup, deps Dependencias) {
	usuarios := repositories.NewUsuarioRepository(deps.DB)
	auth := services.NewAuthService(usuarios, deps.Config, deps.Logger)
	authController := NewAuthController(auth, deps.Logger)

	api.POST("/usuarios/login", authController.Login)

	protegido := api.Group("")
	protegido.Use(middleware.Autenticacao(auth, deps.Logger))
	{
		protegido.POST("/logout", authController.Logout)

		RegistrarLookups(protegido, deps.DB, deps.Logger)
		RegistrarComercial(protegido, deps.DB, deps.Logger)
		RegistrarEstudo(protegido, deps.DB, deps.Logger)

		NewVeiculoController(deps.DB, deps.Logger).RegisterRoutes(protegido)
		NewModeloVeiculoController(deps.DB, deps.Logger).RegisterRoutes(protegido)
		NewUsuarioController(deps.DB, deps.Logger).RegisterRoutes(protegido)
	}
}
