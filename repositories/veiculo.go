package repositories

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub002/models"
	"gorm.io/gorm"
)

// VeiculoRepository handles database operations for vehicles.
type VeiculoRepository struct {
	*Repository[models.Veiculo]
}

// NewVeiculoRepository creates a new vehicle repository instance.
func NewVeiculoRepository(db *gorm.DB) *VeiculoRepository {
	return &VeiculoRepository{
		Repository: New[models.Veiculo](db, Config{
			OrdemPadrao: "placa ASC",
			Preloads:    []string{"Modelo.Marca", "TipoCombustivel", "TipoCambio", "EstadoVeiculo", "CorVeiculo"},
		}),
	}
}

// FindByPlaca retrieves a vehicle by its unique license plate.
func (r *VeiculoRepository) FindByPlaca(ctx context.Context, placa string) (*models.Veiculo, error) {
	return r.FindByUniqueField(ctx, "placa", placa)
}

// FindByModeloID retrieves all vehicles of a given model.
func (r *VeiculoRepository) FindByModeloID(ctx context.Context, modeloID uint) ([]models.Veiculo, error) {
	return r.FindMany(ctx, "modelo_id = ?", []any{modeloID}, nil)
}

// ModeloVeiculoRepository handles database operations for vehicle models.
type ModeloVeiculoRepository struct {
	*Repository[models.ModeloVeiculo]
}

// NewModeloVeiculoRepository creates a new vehicle model repository instance.
func NewModeloVeiculoRepository(db *gorm.DB) *ModeloVeiculoRepository {
	return &ModeloVeiculoRepository{
		Repository: New[models.ModeloVeiculo](db, Config{
			OrdemPadrao: "descricao ASC",
			Preloads:    []string{"Marca"},
		}),
	}
}

// FindByMarcaID retrieves all models of a given brand.
func (r *ModeloVeiculoRepository) FindByMarcaID(ctx context.Context, marcaID uint) ([]models.ModeloVeiculo, error) {
	return r.FindMany(ctx, "marca_id = ?", []any{marcaID}, nil)
}
