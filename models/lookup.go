package models

import "time"

// Lookup tables: small reference rows identified by a unique description,
// referenced by foreign key from the larger entities.

// Marca represents a vehicle brand.
type Marca struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (Marca) TableName() string { return "marcas" }

// TipoCombustivel represents a fuel type (gasolina, etanol, flex, diesel).
type TipoCombustivel struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (TipoCombustivel) TableName() string { return "tipos_combustivel" }

// TipoCambio represents a transmission type.
type TipoCambio struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (TipoCambio) TableName() string { return "tipos_cambio" }

// EstadoVeiculo represents a vehicle situation (novo, usado, vendido).
type EstadoVeiculo struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (EstadoVeiculo) TableName() string { return "estados_veiculo" }

// CorVeiculo represents a vehicle color.
type CorVeiculo struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (CorVeiculo) TableName() string { return "cores_veiculo" }

// SituacaoCompra represents a purchase status.
type SituacaoCompra struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (SituacaoCompra) TableName() string { return "situacoes_compra" }

// SituacaoVenda represents a sale status.
type SituacaoVenda struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (SituacaoVenda) TableName() string { return "situacoes_venda" }

// SituacaoUsuario represents a user account status (Ativo, Bloqueado, Inativo).
type SituacaoUsuario struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (SituacaoUsuario) TableName() string { return "situacoes_usuario" }

// GrupoUsuario represents a user group.
type GrupoUsuario struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (GrupoUsuario) TableName() string { return "grupos_usuario" }

// SituacaoPlano represents a study plan status.
type SituacaoPlano struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (SituacaoPlano) TableName() string { return "situacoes_plano" }

// SituacaoTopico represents a topic status.
type SituacaoTopico struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Descricao    string    `json:"descricao" gorm:"type:varchar(100);uniqueIndex;not null"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (SituacaoTopico) TableName() string { return "situacoes_topico" }
