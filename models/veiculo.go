package models

import "time"

// ModeloVeiculo represents a vehicle model belonging to a brand.
type ModeloVeiculo struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	MarcaID      uint      `json:"marcaId" gorm:"not null"`
	Marca        *Marca    `json:"marca,omitempty" gorm:"foreignKey:MarcaID"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (ModeloVeiculo) TableName() string { return "modelos_veiculo" }

// Veiculo represents a vehicle in stock.
type Veiculo struct {
	ID                uint             `json:"id" gorm:"primaryKey"`
	Placa             string           `json:"placa" gorm:"type:varchar(10);uniqueIndex;not null"`
	Renavam           string           `json:"renavam" gorm:"type:varchar(20)"`
	AnoFabricacao     int              `json:"anoFabricacao" gorm:"not null"`
	AnoModelo         int              `json:"anoModelo"`
	Quilometragem     int              `json:"quilometragem"`
	ModeloID          uint             `json:"modeloId" gorm:"not null"`
	Modelo            *ModeloVeiculo   `json:"modelo,omitempty" gorm:"foreignKey:ModeloID"`
	TipoCombustivelID uint             `json:"tipoCombustivelId" gorm:"not null"`
	TipoCombustivel   *TipoCombustivel `json:"tipoCombustivel,omitempty" gorm:"foreignKey:TipoCombustivelID"`
	TipoCambioID      uint             `json:"tipoCambioId" gorm:"not null"`
	TipoCambio        *TipoCambio      `json:"tipoCambio,omitempty" gorm:"foreignKey:TipoCambioID"`
	EstadoVeiculoID   uint             `json:"estadoVeiculoId" gorm:"not null"`
	EstadoVeiculo     *EstadoVeiculo   `json:"estadoVeiculo,omitempty" gorm:"foreignKey:EstadoVeiculoID"`
	CorVeiculoID      uint             `json:"corVeiculoId" gorm:"not null"`
	CorVeiculo        *CorVeiculo      `json:"corVeiculo,omitempty" gorm:"foreignKey:CorVeiculoID"`
	CriadoEm          time.Time        `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm      time.Time        `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (Veiculo) TableName() string { return "veiculos" }
