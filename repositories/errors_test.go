package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTraduzErro(t *testing.T) {
	tests := []struct {
		nome     string
		err      error
		remocao  bool
		esperado error
	}{
		{
			nome:     "nulo permanece nulo",
			err:      nil,
			esperado: nil,
		},
		{
			nome:     "registro inexistente",
			err:      gorm.ErrRecordNotFound,
			esperado: ErrNaoEncontrado,
		},
		{
			nome:     "violação de unicidade",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "idx_usuarios_email"},
			esperado: ErrConflito,
		},
		{
			nome:     "chave estrangeira ausente em inserção",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "fk_veiculos_modelo"},
			esperado: ErrViolacaoFK,
		},
		{
			nome:     "chave estrangeira bloqueia remoção",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "fk_veiculos_modelo"},
			remocao:  true,
			esperado: ErrDependencia,
		},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			traduzido := traduzErro(tt.err, tt.remocao)
			if tt.esperado == nil {
				assert.NoError(t, traduzido)
				return
			}
			assert.ErrorIs(t, traduzido, tt.esperado)
		})
	}
}

func TestTraduzErroPreservaErroDesconhecido(t *testing.T) {
	original := errors.New("connection refused")
	assert.Equal(t, original, traduzErro(original, false))
}
