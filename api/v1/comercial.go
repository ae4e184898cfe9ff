package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/models"
	"github.com/marcosmapl/studium-backend-sub002/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegistrarComercial registers the back-office commercial entities: branches,
// suppliers, customers, purchases and sales.
func RegistrarComercial(g *gin.RouterGroup, db *gorm.DB, logger *zap.Logger) {
	NovoCrud(CrudConfig[models.Unidade]{
		Repo:         repositories.New[models.Unidade](db, repositories.Config{OrdemPadrao: "nome ASC"}),
		Singular:     "Unidade",
		Feminino:     true,
		Obrigatorios: []string{"nome"},
	}, logger).RegistrarRotas(g, "unidades")

	NovoCrud(CrudConfig[models.Fornecedor]{
		Repo:         repositories.New[models.Fornecedor](db, repositories.Config{OrdemPadrao: "razao_social ASC"}),
		Singular:     "Fornecedor",
		Obrigatorios: []string{"razaoSocial", "cnpj"},
		Validadores:  []Validador{padraoEmail("email")},
	}, logger).RegistrarRotas(g, "fornecedores")

	NovoCrud(CrudConfig[models.Cliente]{
		Repo:         repositories.New[models.Cliente](db, repositories.Config{OrdemPadrao: "nome ASC"}),
		Singular:     "Cliente",
		Obrigatorios: []string{"nome", "cpf"},
		Validadores:  []Validador{padraoEmail("email")},
	}, logger).RegistrarRotas(g, "clientes")

	NewCompraVeiculoController(db, logger).RegisterRoutes(g)
	NewVendaVeiculoController(db, logger).RegisterRoutes(g)
}

// CompraVeiculoController handles vehicle purchase endpoints.
type CompraVeiculoController struct {
	*Crud[models.CompraVeiculo]
	repo *repositories.CompraVeiculoRepository
}

// NewCompraVeiculoController creates a new purchase controller.
func NewCompraVeiculoController(db *gorm.DB, logger *zap.Logger) *CompraVeiculoController {
	repo := repositories.NewCompraVeiculoRepository(db)
	return &CompraVeiculoController{
		Crud: NovoCrud(CrudConfig[models.CompraVeiculo]{
			Repo:     repo.Repository,
			Singular: "Compra de veículo",
			Feminino: true,
			Obrigatorios: []string{
				"dataCompra", "valor", "veiculoId", "fornecedorId",
				"unidadeId", "situacaoCompraId",
			},
			Validadores: []Validador{numeroPositivo("valor")},
			// "veiculo" also occurs in the table name, so it goes last
			FKs: []FKRelacionada{
				{"fornecedor", "Fornecedor não encontrado"},
				{"unidade", "Unidade não encontrada"},
				{"situacao_compra", "Situação de compra não encontrada"},
				{"veiculo", "Veículo não encontrado"},
			},
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers purchase routes.
func (pc *CompraVeiculoController) RegisterRoutes(g *gin.RouterGroup) {
	pc.RegistrarRotas(g, "comprasVeiculo")
	compras := g.Group("/comprasVeiculo")
	{
		compras.GET("/fornecedor/:fornecedorId", pc.ListarPorFornecedor)
	}
}

// ListarPorFornecedor retrieves all purchases made from a supplier.
func (pc *CompraVeiculoController) ListarPorFornecedor(c *gin.Context) {
	id, ok := pc.lerID(c, "fornecedorId")
	if !ok {
		return
	}
	registros, err := pc.repo.FindByFornecedorID(c.Request.Context(), id)
	pc.responderColecao(c, registros, err)
}

// VendaVeiculoController handles vehicle sale endpoints.
type VendaVeiculoController struct {
	*Crud[models.VendaVeiculo]
	repo *repositories.VendaVeiculoRepository
}

// NewVendaVeiculoController creates a new sale controller.
func NewVendaVeiculoController(db *gorm.DB, logger *zap.Logger) *VendaVeiculoController {
	repo := repositories.NewVendaVeiculoRepository(db)
	return &VendaVeiculoController{
		Crud: NovoCrud(CrudConfig[models.VendaVeiculo]{
			Repo:     repo.Repository,
			Singular: "Venda de veículo",
			Feminino: true,
			Obrigatorios: []string{
				"dataVenda", "valor", "veiculoId", "clienteId",
				"vendedorId", "situacaoVendaId",
			},
			Validadores: []Validador{numeroPositivo("valor")},
			// "veiculo" also occurs in the table name, so it goes last
			FKs: []FKRelacionada{
				{"cliente", "Cliente não encontrado"},
				{"vendedor", "Vendedor não encontrado"},
				{"situacao_venda", "Situação de venda não encontrada"},
				{"veiculo", "Veículo não encontrado"},
			},
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers sale routes.
func (vc *VendaVeiculoController) RegisterRoutes(g *gin.RouterGroup) {
	vc.RegistrarRotas(g, "vendasVeiculo")
	vendas := g.Group("/vendasVeiculo")
	{
		vendas.GET("/cliente/:clienteId", vc.ListarPorCliente)
	}
}

// ListarPorCliente retrieves all sales made to a customer.
func (vc *VendaVeiculoController) ListarPorCliente(c *gin.Context) {
	id, ok := vc.lerID(c, "clienteId")
	if !ok {
		return
	}
	registros, err := vc.repo.FindByClienteID(c.Request.Context(), id)
	vc.responderColecao(c, registros, err)
}
