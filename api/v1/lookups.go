package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/models"
	"github.com/marcosmapl/studium-backend-sub002/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registrarLookup wires the uniform CRUD routes for one lookup table. Every
// lookup differs only in path, display name and gender; they all require a
// unique descricao and list in description order.
func registrarLookup[T any](g *gin.RouterGroup, db *gorm.DB, logger *zap.Logger, caminho, singular string, feminino bool) {
	crud := NovoCrud(CrudConfig[T]{
		Repo:         repositories.New[T](db, repositories.Config{OrdemPadrao: "descricao ASC"}),
		Singular:     singular,
		Feminino:     feminino,
		Obrigatorios: []string{"descricao"},
	}, logger)
	crud.RegistrarRotas(g, caminho)
}

// RegistrarLookups registers the CRUD routes of every lookup table.
func RegistrarLookups(g *gin.RouterGroup, db *gorm.DB, logger *zap.Logger) {
	registrarLookup[models.Marca](g, db, logger, "marcas", "Marca", true)
	registrarLookup[models.TipoCombustivel](g, db, logger, "tiposCombustivel", "Tipo de combustível", false)
	registrarLookup[models.TipoCambio](g, db, logger, "tiposCambio", "Tipo de câmbio", false)
	registrarLookup[models.EstadoVeiculo](g, db, logger, "estadosVeiculo", "Estado de veículo", false)
	registrarLookup[models.CorVeiculo](g, db, logger, "coresVeiculo", "Cor de veículo", true)
	registrarLookup[models.SituacaoCompra](g, db, logger, "situacoesCompra", "Situação de compra", true)
	registrarLookup[models.SituacaoVenda](g, db, logger, "situacoesVenda", "Situação de venda", true)
	registrarLookup[models.SituacaoUsuario](g, db, logger, "situacoesUsuario", "Situação de usuário", true)
	registrarLookup[models.GrupoUsuario](g, db, logger, "gruposUsuario", "Grupo de usuário", false)
	registrarLookup[models.SituacaoPlano](g, db, logger, "situacoesPlano", "Situação de plano", true)
	registrarLookup[models.SituacaoTopico](g, db, logger, "situacoesTopico", "Situação de tópico", true)
}
