package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashECompararSenha(t *testing.T) {
	hash, err := HashSenha("minha-senha-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "minha-senha-secreta", hash)

	assert.NoError(t, CompararSenha(hash, "minha-senha-secreta"))
	assert.Error(t, CompararSenha(hash, "senha-errada"))
}
