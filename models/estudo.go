package models

import "time"

// Disciplina represents a subject available for study planning.
type Disciplina struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Titulo       string    `json:"titulo" gorm:"type:varchar(150);uniqueIndex;not null"`
	Descricao    string    `json:"descricao" gorm:"type:text"`
	CriadoEm     time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (Disciplina) TableName() string { return "disciplinas" }

// PlanoEstudo represents a user's study plan.
type PlanoEstudo struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Titulo          string         `json:"titulo" gorm:"type:varchar(150);not null"`
	Descricao       string         `json:"descricao" gorm:"type:text"`
	DataInicio      *time.Time     `json:"dataInicio"`
	DataFim         *time.Time     `json:"dataFim"`
	UsuarioID       uint           `json:"usuarioId" gorm:"not null"`
	Usuario         *Usuario       `json:"usuario,omitempty" gorm:"foreignKey:UsuarioID"`
	SituacaoPlanoID uint           `json:"situacaoPlanoId" gorm:"not null"`
	SituacaoPlano   *SituacaoPlano `json:"situacaoPlano,omitempty" gorm:"foreignKey:SituacaoPlanoID"`
	CriadoEm        time.Time      `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm    time.Time      `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (PlanoEstudo) TableName() string { return "planos_estudo" }

// DisciplinaPlanejada links a subject to a study plan with a study order.
type DisciplinaPlanejada struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	Ordem         int          `json:"ordem" gorm:"not null"`
	PlanoEstudoID uint         `json:"planoEstudoId" gorm:"not null;uniqueIndex:idx_plano_disciplina"`
	PlanoEstudo   *PlanoEstudo `json:"planoEstudo,omitempty" gorm:"foreignKey:PlanoEstudoID"`
	DisciplinaID  uint         `json:"disciplinaId" gorm:"not null;uniqueIndex:idx_plano_disciplina"`
	Disciplina    *Disciplina  `json:"disciplina,omitempty" gorm:"foreignKey:DisciplinaID"`
	CriadoEm      time.Time    `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm  time.Time    `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (DisciplinaPlanejada) TableName() string { return "disciplinas_planejadas" }

// Topico represents a topic inside a planned subject.
type Topico struct {
	ID                    uint                 `json:"id" gorm:"primaryKey"`
	Titulo                string               `json:"titulo" gorm:"type:varchar(150);not null"`
	Ordem                 int                  `json:"ordem" gorm:"not null"`
	DisciplinaPlanejadaID uint                 `json:"disciplinaPlanejadaId" gorm:"not null"`
	DisciplinaPlanejada   *DisciplinaPlanejada `json:"disciplinaPlanejada,omitempty" gorm:"foreignKey:DisciplinaPlanejadaID"`
	SituacaoTopicoID      uint                 `json:"situacaoTopicoId" gorm:"not null"`
	SituacaoTopico        *SituacaoTopico      `json:"situacaoTopico,omitempty" gorm:"foreignKey:SituacaoTopicoID"`
	CriadoEm              time.Time            `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm          time.Time            `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (Topico) TableName() string { return "topicos" }

// DiaEstudo represents a weekday reserved for studying inside a plan.
// A plan has at most one row per weekday.
type DiaEstudo struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	DiaSemana     int          `json:"diaSemana" gorm:"not null;uniqueIndex:idx_plano_dia_semana"`
	PlanoEstudoID uint         `json:"planoEstudoId" gorm:"not null;uniqueIndex:idx_plano_dia_semana"`
	PlanoEstudo   *PlanoEstudo `json:"planoEstudo,omitempty" gorm:"foreignKey:PlanoEstudoID"`
	CriadoEm      time.Time    `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm  time.Time    `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (DiaEstudo) TableName() string { return "dias_estudo" }

// AlocacaoDia allocates hours of a study day to a planned subject.
// Each (study day, planned subject) pair has at most one allocation.
type AlocacaoDia struct {
	ID                    uint                 `json:"id" gorm:"primaryKey"`
	HorasAlocadas         float64              `json:"horasAlocadas" gorm:"not null"`
	DiaEstudoID           uint                 `json:"diaEstudoId" gorm:"not null;uniqueIndex:idx_dia_disciplina"`
	DiaEstudo             *DiaEstudo           `json:"diaEstudo,omitempty" gorm:"foreignKey:DiaEstudoID"`
	DisciplinaPlanejadaID uint                 `json:"disciplinaPlanejadaId" gorm:"not null;uniqueIndex:idx_dia_disciplina"`
	DisciplinaPlanejada   *DisciplinaPlanejada `json:"disciplinaPlanejada,omitempty" gorm:"foreignKey:DisciplinaPlanejadaID"`
	CriadoEm              time.Time            `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm          time.Time            `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (AlocacaoDia) TableName() string { return "alocacoes_dia" }

// SessaoEstudo records a study session against a topic.
type SessaoEstudo struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	DataSessao     time.Time `json:"dataSessao" gorm:"not null"`
	DuracaoMinutos int       `json:"duracaoMinutos" gorm:"not null"`
	Anotacoes      string    `json:"anotacoes" gorm:"type:text"`
	TopicoID       uint      `json:"topicoId" gorm:"not null"`
	Topico         *Topico   `json:"topico,omitempty" gorm:"foreignKey:TopicoID"`
	CriadoEm       time.Time `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm   time.Time `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (SessaoEstudo) TableName() string { return "sessoes_estudo" }
