package repositories

import (
	"context"
	"time"

	"github.com/marcosmapl/studium-backend-sub002/models"
	"gorm.io/gorm"
)

// UsuarioRepository handles database operations for users.
type UsuarioRepository struct {
	*Repository[models.Usuario]
}

// NewUsuarioRepository creates a new user repository instance.
func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{
		Repository: New[models.Usuario](db, Config{
			OrdemPadrao: "nome_usuario ASC",
			Preloads:    []string{"GrupoUsuario", "SituacaoUsuario"},
		}),
	}
}

// FindByNomeUsuario retrieves a user by its unique username.
func (r *UsuarioRepository) FindByNomeUsuario(ctx context.Context, nomeUsuario string) (*models.Usuario, error) {
	return r.FindByUniqueField(ctx, "nome_usuario", nomeUsuario)
}

// RegistrarFalha persists a new remaining-attempts value after a failed
// login. Reaching zero locks the account.
func (r *UsuarioRepository) RegistrarFalha(ctx context.Context, id uint, tentativasRestantes int) error {
	err := r.DB().WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id = ?", id).
		Update("tentativas_login", tentativasRestantes).Error
	return traduzErro(err, false)
}

// RegistrarAcesso resets the attempt counter and stamps the last access
// after a successful login.
func (r *UsuarioRepository) RegistrarAcesso(ctx context.Context, id uint, momento time.Time) error {
	err := r.DB().WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"tentativas_login": models.MaxTentativasLogin,
			"ultimo_acesso":    momento,
		}).Error
	return traduzErro(err, false)
}
