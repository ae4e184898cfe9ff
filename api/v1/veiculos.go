package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/marcosmapl/studium-backend-sub002/models"
	"github.com/marcosmapl/studium-backend-sub002/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VeiculoController handles vehicle endpoints.
type VeiculoController struct {
	*Crud[models.Veiculo]
	repo *repositories.VeiculoRepository
}

// NewVeiculoController creates a new vehicle controller.
func NewVeiculoController(db *gorm.DB, logger *zap.Logger) *VeiculoController {
	repo := repositories.NewVeiculoRepository(db)
	return &VeiculoController{
		Crud: NovoCrud(CrudConfig[models.Veiculo]{
			Repo:     repo.Repository,
			Singular: "Veículo",
			Obrigatorios: []string{
				"placa", "anoFabricacao", "modeloId", "tipoCombustivelId",
				"tipoCambioId", "estadoVeiculoId", "corVeiculoId",
			},
			Validadores: []Validador{
				numeroPositivo("anoFabricacao"),
			},
			FKs: []FKRelacionada{
				{"modelo", "Modelo de veículo não encontrado"},
				{"tipo_combustivel", "Tipo de combustível não encontrado"},
				{"tipo_cambio", "Tipo de câmbio não encontrado"},
				{"estado_veiculo", "Estado de veículo não encontrado"},
				{"cor_veiculo", "Cor de veículo não encontrada"},
			},
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers vehicle routes.
func (vc *VeiculoController) RegisterRoutes(g *gin.RouterGroup) {
	vc.RegistrarRotas(g, "veiculos")
	veiculos := g.Group("/veiculos")
	{
		veiculos.GET("/placa/:placa", vc.BuscarPorPlaca)
		veiculos.GET("/modelo/:modeloId", vc.ListarPorModelo)
	}
}

// BuscarPorPlaca retrieves a vehicle by its unique license plate.
func (vc *VeiculoController) BuscarPorPlaca(c *gin.Context) {
	registro, err := vc.repo.FindByPlaca(c.Request.Context(), c.Param("placa"))
	vc.responderRegistro(c, registro, err)
}

// ListarPorModelo retrieves all vehicles of a given model.
func (vc *VeiculoController) ListarPorModelo(c *gin.Context) {
	id, ok := vc.lerID(c, "modeloId")
	if !ok {
		return
	}
	registros, err := vc.repo.FindByModeloID(c.Request.Context(), id)
	vc.responderColecao(c, registros, err)
}

// ModeloVeiculoController handles vehicle model endpoints.
type ModeloVeiculoController struct {
	*Crud[models.ModeloVeiculo]
	repo *repositories.ModeloVeiculoRepository
}

// NewModeloVeiculoController creates a new vehicle model controller.
func NewModeloVeiculoController(db *gorm.DB, logger *zap.Logger) *ModeloVeiculoController {
	repo := repositories.NewModeloVeiculoRepository(db)
	return &ModeloVeiculoController{
		Crud: NovoCrud(CrudConfig[models.ModeloVeiculo]{
			Repo:         repo.Repository,
			Singular:     "Modelo de veículo",
			Obrigatorios: []string{"descricao", "marcaId"},
			FKAusente:    "Marca não encontrada",
		}, logger),
		repo: repo,
	}
}

// RegisterRoutes registers vehicle model routes.
func (mc *ModeloVeiculoController) RegisterRoutes(g *gin.RouterGroup) {
	mc.RegistrarRotas(g, "modelosVeiculo")
	modelos := g.Group("/modelosVeiculo")
	{
		modelos.GET("/marca/:marcaId", mc.ListarPorMarca)
	}
}

// ListarPorMarca retrieves all models of a given brand.
func (mc *ModeloVeiculoController) ListarPorMarca(c *gin.Context) {
	id, ok := mc.lerID(c, "marcaId")
	if !ok {
		return
	}
	registros, err := mc.repo.FindByMarcaID(c.Request.Context(), id)
	mc.responderColecao(c, registros, err)
}
