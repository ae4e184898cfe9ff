package repositories

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub002/models"
	"gorm.io/gorm"
)

// PlanoEstudoRepository handles database operations for study plans.
type PlanoEstudoRepository struct {
	*Repository[models.PlanoEstudo]
}

// NewPlanoEstudoRepository creates a new study plan repository instance.
func NewPlanoEstudoRepository(db *gorm.DB) *PlanoEstudoRepository {
	return &PlanoEstudoRepository{
		Repository: New[models.PlanoEstudo](db, Config{
			OrdemPadrao: "titulo ASC",
			Preloads:    []string{"Usuario", "SituacaoPlano"},
		}),
	}
}

// FindByTitulo retrieves a study plan by its exact title.
func (r *PlanoEstudoRepository) FindByTitulo(ctx context.Context, titulo string) (*models.PlanoEstudo, error) {
	return r.FindByUniqueField(ctx, "titulo", titulo)
}

// FindByTituloParcial retrieves study plans whose title contains the given
// fragment, case-insensitively.
func (r *PlanoEstudoRepository) FindByTituloParcial(ctx context.Context, titulo string) ([]models.PlanoEstudo, error) {
	return r.FindMany(ctx, "titulo ILIKE ?", []any{"%" + titulo + "%"}, nil)
}

// FindByUsuarioID retrieves all study plans owned by a user.
func (r *PlanoEstudoRepository) FindByUsuarioID(ctx context.Context, usuarioID uint) ([]models.PlanoEstudo, error) {
	return r.FindMany(ctx, "usuario_id = ?", []any{usuarioID}, nil)
}

// DisciplinaPlanejadaRepository handles database operations for planned subjects.
type DisciplinaPlanejadaRepository struct {
	*Repository[models.DisciplinaPlanejada]
}

// NewDisciplinaPlanejadaRepository creates a new planned subject repository instance.
func NewDisciplinaPlanejadaRepository(db *gorm.DB) *DisciplinaPlanejadaRepository {
	return &DisciplinaPlanejadaRepository{
		Repository: New[models.DisciplinaPlanejada](db, Config{
			OrdemPadrao: "ordem ASC",
			Preloads:    []string{"Disciplina"},
		}),
	}
}

// FindByPlanoEstudoID retrieves the planned subjects of a study plan.
func (r *DisciplinaPlanejadaRepository) FindByPlanoEstudoID(ctx context.Context, planoID uint) ([]models.DisciplinaPlanejada, error) {
	return r.FindMany(ctx, "plano_estudo_id = ?", []any{planoID}, nil)
}

// TopicoRepository handles database operations for topics.
type TopicoRepository struct {
	*Repository[models.Topico]
}

// NewTopicoRepository creates a new topic repository instance.
func NewTopicoRepository(db *gorm.DB) *TopicoRepository {
	return &TopicoRepository{
		Repository: New[models.Topico](db, Config{
			OrdemPadrao: "ordem ASC",
			Preloads:    []string{"SituacaoTopico"},
		}),
	}
}

// FindByDisciplinaPlanejadaID retrieves the topics of a planned subject.
func (r *TopicoRepository) FindByDisciplinaPlanejadaID(ctx context.Context, disciplinaPlanejadaID uint) ([]models.Topico, error) {
	return r.FindMany(ctx, "disciplina_planejada_id = ?", []any{disciplinaPlanejadaID}, nil)
}

// FindByTituloParcial retrieves topics whose title contains the given
// fragment, case-insensitively.
func (r *TopicoRepository) FindByTituloParcial(ctx context.Context, titulo string) ([]models.Topico, error) {
	return r.FindMany(ctx, "titulo ILIKE ?", []any{"%" + titulo + "%"}, nil)
}

// DiaEstudoRepository handles database operations for study days.
type DiaEstudoRepository struct {
	*Repository[models.DiaEstudo]
}

// NewDiaEstudoRepository creates a new study day repository instance.
func NewDiaEstudoRepository(db *gorm.DB) *DiaEstudoRepository {
	return &DiaEstudoRepository{
		Repository: New[models.DiaEstudo](db, Config{
			OrdemPadrao: "dia_semana ASC",
		}),
	}
}

// FindByPlanoEstudoID retrieves the study days of a study plan.
func (r *DiaEstudoRepository) FindByPlanoEstudoID(ctx context.Context, planoID uint) ([]models.DiaEstudo, error) {
	return r.FindMany(ctx, "plano_estudo_id = ?", []any{planoID}, nil)
}

// AlocacaoDiaRepository handles database operations for day allocations.
type AlocacaoDiaRepository struct {
	*Repository[models.AlocacaoDia]
}

// NewAlocacaoDiaRepository creates a new day allocation repository instance.
func NewAlocacaoDiaRepository(db *gorm.DB) *AlocacaoDiaRepository {
	return &AlocacaoDiaRepository{
		Repository: New[models.AlocacaoDia](db, Config{
			OrdemPadrao: "id ASC",
			Preloads:    []string{"DisciplinaPlanejada.Disciplina"},
		}),
	}
}

// FindByDiaEstudoID retrieves the allocations of a study day.
func (r *AlocacaoDiaRepository) FindByDiaEstudoID(ctx context.Context, diaID uint) ([]models.AlocacaoDia, error) {
	return r.FindMany(ctx, "dia_estudo_id = ?", []any{diaID}, nil)
}

// SessaoEstudoRepository handles database operations for study sessions.
type SessaoEstudoRepository struct {
	*Repository[models.SessaoEstudo]
}

// NewSessaoEstudoRepository creates a new study session repository instance.
func NewSessaoEstudoRepository(db *gorm.DB) *SessaoEstudoRepository {
	return &SessaoEstudoRepository{
		Repository: New[models.SessaoEstudo](db, Config{
			OrdemPadrao: "data_sessao DESC",
			Preloads:    []string{"Topico"},
		}),
	}
}

// FindByTopicoID retrieves the study sessions recorded against a topic.
func (r *SessaoEstudoRepository) FindByTopicoID(ctx context.Context, topicoID uint) ([]models.SessaoEstudo, error) {
	return r.FindMany(ctx, "topico_id = ?", []any{topicoID}, nil)
}
