package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/models"
	"github.com/marcosmapl/studium-backend-sub002/repositories"
	"github.com/marcosmapl/studium-backend-sub002/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UsuarioController handles user endpoints.
type UsuarioController struct {
	*Crud[models.Usuario]
	repo *repositories.UsuarioRepository
}

// NewUsuarioController creates a new user controller.
func NewUsuarioController(db *gorm.DB, logger *zap.Logger) *UsuarioController {
	repo := repositories.NewUsuarioRepository(db)
	return &UsuarioController{
		Crud: NovoCrud(CrudConfig[models.Usuario]{
			Repo:     repo.Repository,
			Singular: "Usuário",
			Obrigatorios: []string{
				"nome", "nomeUsuario", "email", "senha",
				"grupoUsuarioId", "situacaoUsuarioId",
			},
			Validadores: []Validador{
				padraoEmail("email"),
				tamanhoMinimo("senha", 6),
			},
			FKs: []FKRelacionada{
				{"grupo_usuario", "Grupo de usuário não encontrado"},
				{"situacao_usuario", "Situação de usuário não encontrada"},
			},
			AntesDeCriar:     aplicarSenha(true),
			AntesDeAtualizar: aplicarSenha(false),
		}, logger),
		repo: repo,
	}
}

// aplicarSenha hashes the plaintext password carried in the request body.
// The Senha field never round-trips through JSON, so on update an absent
// senha keeps the stored hash. Creation also seeds the attempt counter.
func aplicarSenha(criacao bool) func(corpo map[string]any, u *models.Usuario) error {
	return func(corpo map[string]any, u *models.Usuario) error {
		if senha, ok := corpo["senha"].(string); ok && senha != "" {
			hash, err := utils.HashSenha(senha)
			if err != nil {
				return err
			}
			u.Senha = hash
		}
		if criacao && u.TentativasLogin <= 0 {
			u.TentativasLogin = models.MaxTentativasLogin
		}
		return nil
	}
}

// RegisterRoutes registers user routes.
func (uc *UsuarioController) RegisterRoutes(g *gin.RouterGroup) {
	uc.RegistrarRotas(g, "usuarios")
	usuarios := g.Group("/usuarios")
	{
		usuarios.GET("/nomeUsuario/:nomeUsuario", uc.BuscarPorNomeUsuario)
	}
}

// BuscarPorNomeUsuario retrieves a user by its unique username.
func (uc *UsuarioController) BuscarPorNomeUsuario(c *gin.Context) {
	registro, err := uc.repo.FindByNomeUsuario(c.Request.Context(), c.Param("nomeUsuario"))
	uc.responderRegistro(c, registro, err)
}
