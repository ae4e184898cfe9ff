package repositories

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub002/models"
	"gorm.io/gorm"
)

// CompraVeiculoRepository handles database operations for vehicle purchases.
type CompraVeiculoRepository struct {
	*Repository[models.CompraVeiculo]
}

// NewCompraVeiculoRepository creates a new purchase repository instance.
func NewCompraVeiculoRepository(db *gorm.DB) *CompraVeiculoRepository {
	return &CompraVeiculoRepository{
		Repository: New[models.CompraVeiculo](db, Config{
			OrdemPadrao: "data_compra DESC",
			Preloads:    []string{"Veiculo", "Fornecedor", "Unidade", "SituacaoCompra"},
		}),
	}
}

// FindByFornecedorID retrieves all purchases made from a supplier.
func (r *CompraVeiculoRepository) FindByFornecedorID(ctx context.Context, fornecedorID uint) ([]models.CompraVeiculo, error) {
	return r.FindMany(ctx, "fornecedor_id = ?", []any{fornecedorID}, nil)
}

// VendaVeiculoRepository handles database operations for vehicle sales.
type VendaVeiculoRepository struct {
	*Repository[models.VendaVeiculo]
}

// NewVendaVeiculoRepository creates a new sale repository instance.
func NewVendaVeiculoRepository(db *gorm.DB) *VendaVeiculoRepository {
	return &VendaVeiculoRepository{
		Repository: New[models.VendaVeiculo](db, Config{
			OrdemPadrao: "data_venda DESC",
			Preloads:    []string{"Veiculo", "Cliente", "Vendedor", "SituacaoVenda"},
		}),
	}
}

// FindByClienteID retrieves all sales made to a customer.
func (r *VendaVeiculoRepository) FindByClienteID(ctx context.Context, clienteID uint) ([]models.VendaVeiculo, error) {
	return r.FindMany(ctx, "cliente_id = ?", []any{clienteID}, nil)
}
