package models

import "time"

// Unidade represents a dealership branch.
type Unidade struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Nome         string    `json:"nome" gorm:"type:varchar(100);uniqueIndex;not null"`
	Endereco     string    `json:"endereco" gorm:"type:varchar(255)"`
	Telefone     string    `json:"telefone" gorm:"type:varchar(20)"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (Unidade) TableName() string { return "unidades" }

// Fornecedor represents a vehicle supplier.
type Fornecedor struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RazaoSocial  string    `json:"razaoSocial" gorm:"type:varchar(150);not null"`
	CNPJ         string    `json:"cnpj" gorm:"column:cnpj;type:varchar(18);uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"type:varchar(150)"`
	Telefone     string    `json:"telefone" gorm:"type:varchar(20)"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (Fornecedor) TableName() string { return "fornecedores" }

// Cliente represents a customer.
type Cliente struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Nome           string     `json:"nome" gorm:"type:varchar(150);not null"`
	CPF            string     `json:"cpf" gorm:"column:cpf;type:varchar(14);uniqueIndex;not null"`
	Email          string     `json:"email" gorm:"type:varchar(150)"`
	Telefone       string     `json:"telefone" gorm:"type:varchar(20)"`
	DataNascimento *time.Time `json:"dataNascimento"`
	CriadoEm       time.Time  `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm   time.Time  `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (Cliente) TableName() string { return "clientes" }

// CompraVeiculo represents the purchase of a vehicle from a supplier.
type CompraVeiculo struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	DataCompra       time.Time       `json:"dataCompra" gorm:"not null"`
	Valor            float64         `json:"valor" gorm:"not null"`
	VeiculoID        uint            `json:"veiculoId" gorm:"not null"`
	Veiculo          *Veiculo        `json:"veiculo,omitempty" gorm:"foreignKey:VeiculoID"`
	FornecedorID     uint            `json:"fornecedorId" gorm:"not null"`
	Fornecedor       *Fornecedor     `json:"fornecedor,omitempty" gorm:"foreignKey:FornecedorID"`
	UnidadeID        uint            `json:"unidadeId" gorm:"not null"`
	Unidade          *Unidade        `json:"unidade,omitempty" gorm:"foreignKey:UnidadeID"`
	SituacaoCompraID uint            `json:"situacaoCompraId" gorm:"not null"`
	SituacaoCompra   *SituacaoCompra `json:"situacaoCompra,omitempty" gorm:"foreignKey:SituacaoCompraID"`
	CriadoEm         time.Time       `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm     time.Time       `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (CompraVeiculo) TableName() string { return "compras_veiculo" }

// VendaVeiculo represents the sale of a vehicle to a customer.
type VendaVeiculo struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	DataVenda       time.Time      `json:"dataVenda" gorm:"not null"`
	Valor           float64        `json:"valor" gorm:"not null"`
	VeiculoID       uint           `json:"veiculoId" gorm:"not null"`
	Veiculo         *Veiculo       `json:"veiculo,omitempty" gorm:"foreignKey:VeiculoID"`
	ClienteID       uint           `json:"clienteId" gorm:"not null"`
	Cliente         *Cliente       `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
	VendedorID      uint           `json:"vendedorId" gorm:"not null"`
	Vendedor        *Usuario       `json:"vendedor,omitempty" gorm:"foreignKey:VendedorID"`
	SituacaoVendaID uint           `json:"situacaoVendaId" gorm:"not null"`
	SituacaoVenda   *SituacaoVenda `json:"situacaoVenda,omitempty" gorm:"foreignKey:SituacaoVendaID"`
	CriadoEm        time.Time      `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm    time.Time      `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (VendaVeiculo) TableName() string { return "vendas_veiculo" }
