package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamposObrigatoriosEnumeraAusentes(t *testing.T) {
	valida := camposObrigatorios("placa", "modeloVeiculoId", "anoFabricacao", "disponivel")

	err := valida(map[string]any{
		"placa":           "",         // empty string counts as missing
		"modeloVeiculoId": float64(0), // zero counts as missing
		"disponivel":      false,      // false counts as missing
		"cor":             "vermelho", // unrelated fields are ignored
	})

	var ev *ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "Campos obrigatórios ausentes: placa, modeloVeiculoId, anoFabricacao, disponivel", ev.Mensagem)
	assert.Equal(t, []string{"placa", "modeloVeiculoId", "anoFabricacao", "disponivel"}, ev.Campos)
}

func TestCamposObrigatoriosTodosPresentes(t *testing.T) {
	valida := camposObrigatorios("placa", "anoFabricacao")

	err := valida(map[string]any{
		"placa":         "ABC1D23",
		"anoFabricacao": float64(2020),
	})
	assert.NoError(t, err)
}

func TestNumeroPositivo(t *testing.T) {
	valida := numeroPositivo("valor")

	assert.NoError(t, valida(map[string]any{"valor": float64(35000)}))
	assert.NoError(t, valida(map[string]any{})) // absence is not this validator's concern
	assert.Error(t, valida(map[string]any{"valor": float64(-10)}))
	assert.Error(t, valida(map[string]any{"valor": "35000"}))
}

func TestPadraoEmail(t *testing.T) {
	valida := padraoEmail("email")

	assert.NoError(t, valida(map[string]any{"email": "ana@exemplo.com"}))
	assert.NoError(t, valida(map[string]any{"email": ""}))
	assert.NoError(t, valida(map[string]any{}))
	assert.Error(t, valida(map[string]any{"email": "sem-arroba"}))
	assert.Error(t, valida(map[string]any{"email": "com espaco@exemplo.com"}))
	assert.Error(t, valida(map[string]any{"email": float64(42)}))
}

func TestTamanhoMinimo(t *testing.T) {
	valida := tamanhoMinimo("senha", 6)

	assert.NoError(t, valida(map[string]any{"senha": "123456"}))
	assert.NoError(t, valida(map[string]any{}))
	assert.Error(t, valida(map[string]any{"senha": "12345"}))
	assert.Error(t, valida(map[string]any{"senha": float64(123456)}))
}
