package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/repositories"
	"go.uber.org/zap"
)

// FKRelacionada names the related entity behind one foreign key. Fragmento is
// matched against the violated constraint name, case-insensitively and
// ignoring underscores. Entries are checked in order, so fragments that also
// occur in the entity's own table name must come last.
type FKRelacionada struct {
	Fragmento string
	Mensagem  string
}

// CrudConfig parameterizes a generic CRUD controller for one entity.
type CrudConfig[T any] struct {
	// Repo is the data-access facade for the entity's table.
	Repo *repositories.Repository[T]
	// Singular is the human-readable entity name used in error messages.
	Singular string
	// Feminino selects the grammatical gender of generated messages.
	Feminino bool
	// Obrigatorios lists the JSON fields required on creation.
	Obrigatorios []string
	// Validadores run after the required-field check on create and alone on
	// update.
	Validadores []Validador
	// FKAusente is the message answered when a referenced row is missing and
	// no FKs entry matches the violated constraint.
	FKAusente string
	// FKs maps the entity's foreign keys to per-relation messages for
	// multi-FK entities.
	FKs []FKRelacionada
	// AntesDeCriar optionally adjusts the decoded entity before insertion.
	AntesDeCriar func(corpo map[string]any, entidade *T) error
	// AntesDeAtualizar optionally adjusts the merged entity before saving.
	AntesDeAtualizar func(corpo map[string]any, entidade *T) error
}

// Crud translates HTTP requests into repository calls for one entity,
// shaping JSON responses and applying the error translation table. Entity
// controllers compose it and attach extra finder endpoints.
type Crud[T any] struct {
	cfg    CrudConfig[T]
	logger *zap.Logger
}

// NovoCrud creates a generic CRUD controller.
func NovoCrud[T any](cfg CrudConfig[T], logger *zap.Logger) *Crud[T] {
	if cfg.FKAusente == "" {
		cfg.FKAusente = "Registro relacionado não encontrado"
	}
	return &Crud[T]{cfg: cfg, logger: logger}
}

// RegistrarRotas binds the uniform verb-to-operation mapping under the
// given path.
func (cc *Crud[T]) RegistrarRotas(g *gin.RouterGroup, caminho string) {
	rotas := g.Group("/" + caminho)
	{
		rotas.POST("", cc.Criar)
		rotas.GET("", cc.Listar)
		rotas.GET("/:id", cc.BuscarPorID)
		rotas.PUT("/:id", cc.Atualizar)
		rotas.DELETE("/:id", cc.Remover)
	}
}

// Criar handles POST: required-field validation, the entity's validator
// pipeline, then insertion.
func (cc *Crud[T]) Criar(c *gin.Context) {
	bruto, corpo, ok := cc.lerCorpo(c)
	if !ok {
		return
	}

	pipeline := append([]Validador{camposObrigatorios(cc.cfg.Obrigatorios...)}, cc.cfg.Validadores...)
	for _, valida := range pipeline {
		if err := valida(corpo); err != nil {
			cc.responderErro(c, err)
			return
		}
	}

	var entidade T
	if err := json.Unmarshal(bruto, &entidade); err != nil {
		cc.responderCorpoInvalido(c, err)
		return
	}
	if cc.cfg.AntesDeCriar != nil {
		if err := cc.cfg.AntesDeCriar(corpo, &entidade); err != nil {
			cc.responderErro(c, err)
			return
		}
	}

	if err := cc.cfg.Repo.Create(c.Request.Context(), &entidade); err != nil {
		cc.responderErro(c, err)
		return
	}

	cc.logger.Info("registro criado", zap.String("entidade", cc.cfg.Singular))
	c.JSON(http.StatusCreated, entidade)
}

// Listar handles GET on the collection. Pagination via limit/offset query
// parameters is accepted where callers use it.
func (cc *Crud[T]) Listar(c *gin.Context) {
	var opts repositories.ListOptions
	if limite, err := strconv.Atoi(c.Query("limit")); err == nil {
		opts.Limit = limite
	}
	if deslocamento, err := strconv.Atoi(c.Query("offset")); err == nil {
		opts.Offset = deslocamento
	}

	registros, err := cc.cfg.Repo.FindAll(c.Request.Context(), opts)
	if err != nil {
		cc.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, registros)
}

// BuscarPorID handles GET on a single record.
func (cc *Crud[T]) BuscarPorID(c *gin.Context) {
	id, ok := cc.lerID(c, "id")
	if !ok {
		return
	}

	registro, err := cc.cfg.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		cc.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, registro)
}

// Atualizar handles PUT with a partial field set: the stored record is
// loaded, the body is merged over it and the result saved.
func (cc *Crud[T]) Atualizar(c *gin.Context) {
	id, ok := cc.lerID(c, "id")
	if !ok {
		return
	}
	bruto, corpo, ok := cc.lerCorpo(c)
	if !ok {
		return
	}

	for _, valida := range cc.cfg.Validadores {
		if err := valida(corpo); err != nil {
			cc.responderErro(c, err)
			return
		}
	}

	// the path id addresses the record; an id in the body cannot retarget it
	delete(corpo, "id")
	bruto, err := json.Marshal(corpo)
	if err != nil {
		cc.responderCorpoInvalido(c, err)
		return
	}

	registro, err := cc.cfg.Repo.Update(c.Request.Context(), id, func(entidade *T) error {
		if err := json.Unmarshal(bruto, entidade); err != nil {
			return &ErroValidacao{Mensagem: "Corpo da requisição inválido"}
		}
		if cc.cfg.AntesDeAtualizar != nil {
			return cc.cfg.AntesDeAtualizar(corpo, entidade)
		}
		return nil
	})
	if err != nil {
		cc.responderErro(c, err)
		return
	}

	cc.logger.Info("registro atualizado",
		zap.String("entidade", cc.cfg.Singular), zap.Uint("id", id))
	c.JSON(http.StatusOK, registro)
}

// Remover handles DELETE.
func (cc *Crud[T]) Remover(c *gin.Context) {
	id, ok := cc.lerID(c, "id")
	if !ok {
		return
	}

	if err := cc.cfg.Repo.Delete(c.Request.Context(), id); err != nil {
		cc.responderErro(c, err)
		return
	}

	cc.logger.Info("registro removido",
		zap.String("entidade", cc.cfg.Singular), zap.Uint("id", id))
	c.Status(http.StatusNoContent)
}

// lerID parses a numeric path parameter, answering 400 when non-numeric.
func (cc *Crud[T]) lerID(c *gin.Context, parametro string) (uint, bool) {
	valor, err := strconv.Atoi(c.Param(parametro))
	if err != nil || valor < 0 {
		cc.logger.Warn("identificador inválido",
			zap.String("entidade", cc.cfg.Singular), zap.String("valor", c.Param(parametro)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
		return 0, false
	}
	return uint(valor), true
}

// lerCorpo reads the raw body once and decodes it both as a generic map
// (for the validation pipeline) and later as the entity type.
func (cc *Crud[T]) lerCorpo(c *gin.Context) ([]byte, map[string]any, bool) {
	bruto, err := c.GetRawData()
	if err != nil {
		cc.responderCorpoInvalido(c, err)
		return nil, nil, false
	}
	corpo := map[string]any{}
	if len(bruto) > 0 {
		if err := json.Unmarshal(bruto, &corpo); err != nil {
			cc.responderCorpoInvalido(c, err)
			return nil, nil, false
		}
	}
	return bruto, corpo, true
}

func (cc *Crud[T]) responderCorpoInvalido(c *gin.Context, err error) {
	cc.logger.Warn("corpo da requisição inválido",
		zap.String("entidade", cc.cfg.Singular), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
}

// normalizaConstraint lowercases and strips underscores so configured
// fragments match constraint names regardless of the migrator's casing.
func normalizaConstraint(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// msgFKAusente names the missing related entity. The violated constraint name
// travels wrapped inside the error; the first configured foreign key whose
// fragment occurs in it wins, with FKAusente as the fallback.
func (cc *Crud[T]) msgFKAusente(err error) string {
	texto := normalizaConstraint(err.Error())
	for _, fk := range cc.cfg.FKs {
		if strings.Contains(texto, normalizaConstraint(fk.Fragmento)) {
			return fk.Mensagem
		}
	}
	return cc.cfg.FKAusente
}

// msgNaoEncontrado builds the gender-aware not-found message.
func (cc *Crud[T]) msgNaoEncontrado() string {
	if cc.cfg.Feminino {
		return cc.cfg.Singular + " não encontrada"
	}
	return cc.cfg.Singular + " não encontrado"
}

// responderErro applies the error translation table: validation failures and
// typed persistence kinds map to their HTTP statuses; anything unmatched is
// a 500 carrying the raw detail.
func (cc *Crud[T]) responderErro(c *gin.Context, err error) {
	var ev *ErroValidacao
	switch {
	case errors.As(err, &ev):
		cc.logger.Warn("validação falhou",
			zap.String("entidade", cc.cfg.Singular), zap.String("motivo", ev.Mensagem))
		if len(ev.Campos) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": ev.Mensagem, "missingFields": ev.Campos})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": ev.Mensagem})
	case errors.Is(err, repositories.ErrNaoEncontrado):
		cc.logger.Warn("registro não encontrado", zap.String("entidade", cc.cfg.Singular))
		c.JSON(http.StatusNotFound, gin.H{"error": cc.msgNaoEncontrado()})
	case errors.Is(err, repositories.ErrConflito):
		cc.logger.Warn("violação de unicidade", zap.String("entidade", cc.cfg.Singular))
		c.JSON(http.StatusConflict, gin.H{"error": cc.cfg.Singular + " já existe"})
	case errors.Is(err, repositories.ErrViolacaoFK):
		cc.logger.Warn("registro relacionado ausente",
			zap.String("entidade", cc.cfg.Singular), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": cc.msgFKAusente(err)})
	case errors.Is(err, repositories.ErrDependencia):
		cc.logger.Warn("remoção bloqueada por dependentes", zap.String("entidade", cc.cfg.Singular))
		c.JSON(http.StatusBadRequest, gin.H{"error": cc.cfg.Singular + " possui registros associados"})
	default:
		cc.logger.Error("erro inesperado",
			zap.String("entidade", cc.cfg.Singular), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro interno do servidor",
			"details": err.Error(),
		})
	}
}

// responderColecao answers finder endpoints, applying the 404-on-empty
// convention the single-record routes follow.
func (cc *Crud[T]) responderColecao(c *gin.Context, registros []T, err error) {
	if err != nil {
		cc.responderErro(c, err)
		return
	}
	if len(registros) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": cc.msgNaoEncontrado()})
		return
	}
	c.JSON(http.StatusOK, registros)
}

// responderRegistro answers single-record finder endpoints.
func (cc *Crud[T]) responderRegistro(c *gin.Context, registro *T, err error) {
	if err != nil {
		cc.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, registro)
}
