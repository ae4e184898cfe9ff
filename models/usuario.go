package models

import "time"

// MaxTentativasLogin is the number of login attempts granted on creation and
// restored after a successful login. Reaching zero locks the account.
const MaxTentativasLogin = 5

// Usuario represents a system user.
type Usuario struct {
	ID                uint             `json:"id" gorm:"primaryKey"`
	Nome              string           `json:"nome" gorm:"type:varchar(150);not null"`
	NomeUsuario       string           `json:"nomeUsuario" gorm:"type:varchar(50);uniqueIndex;not null"`
	Email             string           `json:"email" gorm:"type:varchar(150);uniqueIndex;not null"`
	Senha             string           `json:"-" gorm:"type:varchar(100);not null"` // bcrypt hash, never exposed in JSON
	TentativasLogin   int              `json:"tentativasLogin" gorm:"not null;default:5"`
	UltimoAcesso      *time.Time       `json:"ultimoAcesso"`
	GrupoUsuarioID    uint             `json:"grupoUsuarioId" gorm:"not null"`
	GrupoUsuario      *GrupoUsuario    `json:"grupoUsuario,omitempty" gorm:"foreignKey:GrupoUsuarioID"`
	SituacaoUsuarioID uint             `json:"situacaoUsuarioId" gorm:"not null"`
	SituacaoUsuario   *SituacaoUsuario `json:"situacaoUsuario,omitempty" gorm:"foreignKey:SituacaoUsuarioID"`
	CriadoEm          time.Time        `json:"criadoEm" gorm:"autoCreateTime"`
	AtualizadoEm      time.Time        `json:"atualizadoEm" gorm:"autoUpdateTime"`
}

func (Usuario) TableName() string { return "usuarios" }

// Bloqueado reports whether the account has exhausted its login attempts.
func (u *Usuario) Bloqueado() bool {
	return u.TentativasLogin <= 0
}

// Ativo reports whether the account status allows logging in.
func (u *Usuario) Ativo() bool {
	return u.SituacaoUsuario != nil && u.SituacaoUsuario.Descricao == "Ativo"
}
