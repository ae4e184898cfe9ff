package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/models"
	"github.com/marcosmapl/studium-backend-sub002/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegistrarEstudo registers the study-planning entities.
func RegistrarEstudo(g *gin.RouterGroup, db *gorm.DB, logger *zap.Logger) {
	NovoCrud(CrudConfig[models.Disciplina]{
		Repo:         repositories.New[models.Disciplina](db, repositories.Config{OrdemPadrao: "titulo ASC"}),
		Singular:     "Disciplina",
		Feminino:     true,
		Obrigatorios: []string{"titulo"},
	}, logger).RegistrarRotas(g, "disciplinas")

	NewPlanoEstudoController(db, logger).RegisterRoutes(g)
	NewDisciplinaPlanejadaController(db, logger).RegisterRoutes(g)
	NewTopicoController(db, logger).RegisterRoutes(g)
	NewDiaEstudoController(db, logger).RegisterRoutes(g)
	NewAlocacaoDiaController(db, logger).RegisterRoutes(g)
	NewSessaoEstudoController(db, logger).RegisterRoutes(g)
}

// PlanoEstudoController handles study plan endpoints.
type PlanoEstudoController struct {
	*Crud[models.PlanoEstudo]
	repo *repositories.PlanoEstudoRepository
}

// NewPlanoEstudoController creates a new study plan controller.
func NewPlanoEstudoController(db *gorm.DB, logger *zap.Logger) *PlanoEstudoController {
	repo := repositories.NewPlanoEstudoRepository(db)
	return &PlanoEstudoController{
		Crud: NovoCrud(CrudConfig[models.PlanoEstudo]{
			Repo:         repo.Repository,
			Singular:     "Plano de estudo",
			Obrigatorios: []string{"titulo", "usuarioId", "situacaoPlanoId"},
			FKs: []FKRelacionada{
				{"situacao_plano", "Situação de plano não encontrada"},
				{"usuario", "Usuário não encontrado"},
			},
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers study plan routes.
func (pc *PlanoEstudoController) RegisterRoutes(g *gin.RouterGroup) {
	pc.RegistrarRotas(g, "planosEstudo")
	planos := g.Group("/planosEstudo")
	{
		planos.GET("/titulo/:titulo", pc.BuscarPorTitulo)
		planos.GET("/busca/:titulo", pc.ListarPorTituloParcial)
		planos.GET("/usuario/:usuarioId", pc.ListarPorUsuario)
	}
}

// BuscarPorTitulo retrieves a study plan by its exact title.
func (pc *PlanoEstudoController) BuscarPorTitulo(c *gin.Context) {
	registro, err := pc.repo.FindByTitulo(c.Request.Context(), c.Param("titulo"))
	pc.responderRegistro(c, registro, err)
}

// ListarPorTituloParcial retrieves study plans whose title contains the
// given fragment.
func (pc *PlanoEstudoController) ListarPorTituloParcial(c *gin.Context) {
	registros, err := pc.repo.FindByTituloParcial(c.Request.Context(), c.Param("titulo"))
	pc.responderColecao(c, registros, err)
}

// ListarPorUsuario retrieves the study plans owned by a user.
func (pc *PlanoEstudoController) ListarPorUsuario(c *gin.Context) {
	id, ok := pc.lerID(c, "usuarioId")
	if !ok {
		return
	}
	registros, err := pc.repo.FindByUsuarioID(c.Request.Context(), id)
	pc.responderColecao(c, registros, err)
}

// DisciplinaPlanejadaController handles planned subject endpoints.
type DisciplinaPlanejadaController struct {
	*Crud[models.DisciplinaPlanejada]
	repo *repositories.DisciplinaPlanejadaRepository
}

// NewDisciplinaPlanejadaController creates a new planned subject controller.
func NewDisciplinaPlanejadaController(db *gorm.DB, logger *zap.Logger) *DisciplinaPlanejadaController {
	repo := repositories.NewDisciplinaPlanejadaRepository(db)
	return &DisciplinaPlanejadaController{
		Crud: NovoCrud(CrudConfig[models.DisciplinaPlanejada]{
			Repo:         repo.Repository,
			Singular:     "Disciplina planejada",
			Feminino:     true,
			Obrigatorios: []string{"ordem", "planoEstudoId", "disciplinaId"},
			Validadores:  []Validador{numeroPositivo("ordem")},
			// "disciplina" also occurs in the table name, so it goes last
			FKs: []FKRelacionada{
				{"plano_estudo", "Plano de estudo não encontrado"},
				{"disciplina", "Disciplina não encontrada"},
			},
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers planned subject routes.
func (dc *DisciplinaPlanejadaController) RegisterRoutes(g *gin.RouterGroup) {
	dc.RegistrarRotas(g, "disciplinasPlanejadas")
	disciplinas := g.Group("/disciplinasPlanejadas")
	{
		disciplinas.GET("/planoEstudo/:planoId", dc.ListarPorPlano)
	}
}

// ListarPorPlano retrieves the planned subjects of a study plan.
func (dc *DisciplinaPlanejadaController) ListarPorPlano(c *gin.Context) {
	id, ok := dc.lerID(c, "planoId")
	if !ok {
		return
	}
	registros, err := dc.repo.FindByPlanoEstudoID(c.Request.Context(), id)
	dc.responderColecao(c, registros, err)
}

// TopicoController handles topic endpoints.
type TopicoController struct {
	*Crud[models.Topico]
	repo *repositories.TopicoRepository
}

// NewTopicoController creates a new topic controller.
func NewTopicoController(db *gorm.DB, logger *zap.Logger) *TopicoController {
	repo := repositories.NewTopicoRepository(db)
	return &TopicoController{
		Crud: NovoCrud(CrudConfig[models.Topico]{
			Repo:         repo.Repository,
			Singular:     "Tópico",
			Obrigatorios: []string{"titulo", "ordem", "disciplinaPlanejadaId", "situacaoTopicoId"},
			Validadores:  []Validador{numeroPositivo("ordem")},
			FKs: []FKRelacionada{
				{"disciplina_planejada", "Disciplina planejada não encontrada"},
				{"situacao_topico", "Situação de tópico não encontrada"},
			},
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers topic routes.
func (tc *TopicoController) RegisterRoutes(g *gin.RouterGroup) {
	tc.RegistrarRotas(g, "topicos")
	topicos := g.Group("/topicos")
	{
		topicos.GET("/disciplinaPlanejada/:disciplinaPlanejadaId", tc.ListarPorDisciplinaPlanejada)
		topicos.GET("/busca/:titulo", tc.ListarPorTituloParcial)
	}
}

// ListarPorDisciplinaPlanejada retrieves the topics of a planned subject.
func (tc *TopicoController) ListarPorDisciplinaPlanejada(c *gin.Context) {
	id, ok := tc.lerID(c, "disciplinaPlanejadaId")
	if !ok {
		return
	}
	registros, err := tc.repo.FindByDisciplinaPlanejadaID(c.Request.Context(), id)
	tc.responderColecao(c, registros, err)
}

// ListarPorTituloParcial retrieves topics whose title contains the given
// fragment.
func (tc *TopicoController) ListarPorTituloParcial(c *gin.Context) {
	registros, err := tc.repo.FindByTituloParcial(c.Request.Context(), c.Param("titulo"))
	tc.responderColecao(c, registros, err)
}

// DiaEstudoController handles study day endpoints.
type DiaEstudoController struct {
	*Crud[models.DiaEstudo]
	repo *repositories.DiaEstudoRepository
}

// NewDiaEstudoController creates a new study day controller.
func NewDiaEstudoController(db *gorm.DB, logger *zap.Logger) *DiaEstudoController {
	repo := repositories.NewDiaEstudoRepository(db)
	return &DiaEstudoController{
		Crud: NovoCrud(CrudConfig[models.DiaEstudo]{
			Repo:         repo.Repository,
			Singular:     "Dia de estudo",
			Obrigatorios: []string{"diaSemana", "planoEstudoId"},
			Validadores:  []Validador{numeroPositivo("diaSemana")},
			FKAusente:    "Plano de estudo não encontrado",
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers study day routes.
func (dc *DiaEstudoController) RegisterRoutes(g *gin.RouterGroup) {
	dc.RegistrarRotas(g, "diasEstudo")
	dias := g.Group("/diasEstudo")
	{
		dias.GET("/planoEstudo/:planoId", dc.ListarPorPlano)
	}
}

// ListarPorPlano retrieves the study days of a study plan.
func (dc *DiaEstudoController) ListarPorPlano(c *gin.Context) {
	id, ok := dc.lerID(c, "planoId")
	if !ok {
		return
	}
	registros, err := dc.repo.FindByPlanoEstudoID(c.Request.Context(), id)
	dc.responderColecao(c, registros, err)
}

// AlocacaoDiaController handles day allocation endpoints.
type AlocacaoDiaController struct {
	*Crud[models.AlocacaoDia]
	repo *repositories.AlocacaoDiaRepository
}

// NewAlocacaoDiaController creates a new day allocation controller.
func NewAlocacaoDiaController(db *gorm.DB, logger *zap.Logger) *AlocacaoDiaController {
	repo := repositories.NewAlocacaoDiaRepository(db)
	return &AlocacaoDiaController{
		Crud: NovoCrud(CrudConfig[models.AlocacaoDia]{
			Repo:         repo.Repository,
			Singular:     "Alocação de dia",
			Feminino:     true,
			Obrigatorios: []string{"horasAlocadas", "diaEstudoId", "disciplinaPlanejadaId"},
			Validadores:  []Validador{numeroPositivo("horasAlocadas")},
			FKs: []FKRelacionada{
				{"disciplina_planejada", "Disciplina planejada não encontrada"},
				{"dia_estudo", "Dia de estudo não encontrado"},
			},
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers day allocation routes.
func (ac *AlocacaoDiaController) RegisterRoutes(g *gin.RouterGroup) {
	ac.RegistrarRotas(g, "alocacoesDia")
	alocacoes := g.Group("/alocacoesDia")
	{
		alocacoes.GET("/diaEstudo/:diaId", ac.ListarPorDia)
	}
}

// ListarPorDia retrieves the allocations of a study day.
func (ac *AlocacaoDiaController) ListarPorDia(c *gin.Context) {
	id, ok := ac.lerID(c, "diaId")
	if !ok {
		return
	}
	registros, err := ac.repo.FindByDiaEstudoID(c.Request.Context(), id)
	ac.responderColecao(c, registros, err)
}

// SessaoEstudoController handles study session endpoints.
type SessaoEstudoController struct {
	*Crud[models.SessaoEstudo]
	repo *repositories.SessaoEstudoRepository
}

// NewSessaoEstudoController creates a new study session controller.
func NewSessaoEstudoController(db *gorm.DB, logger *zap.Logger) *SessaoEstudoController {
	repo := repositories.NewSessaoEstudoRepository(db)
	return &SessaoEstudoController{
		Crud: NovoCrud(CrudConfig[models.SessaoEstudo]{
			Repo:         repo.Repository,
			Singular:     "Sessão de estudo",
			Feminino:     true,
			Obrigatorios: []string{"dataSessao", "duracaoMinutos", "topicoId"},
			Validadores:  []Validador{numeroPositivo("duracaoMinutos")},
			FKAusente:    "Tópico não encontrado",
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers study session routes.
func (sc *SessaoEstudoController) RegisterRoutes(g *gin.RouterGroup) {
	sc.RegistrarRotas(g, "sessoesEstudo")
	sessoes := g.Group("/sessoesEstudo")
	{
		sessoes.GET("/topico/:topicoId", sc.ListarPorTopico)
	}
}

// ListarPorTopico retrieves the study sessions recorded against a topic.
func (sc *SessaoEstudoController) ListarPorTopico(c *gin.Context) {
	id, ok := sc.lerID(c, "topicoId")
	if !ok {
		return
	}
	registros, err := sc.repo.FindByTopicoID(c.Request.Context(), id)
	sc.responderColecao(c, registros, err)
}
