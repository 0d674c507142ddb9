package usuario

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A senha nunca pode sair em resposta alguma, nem direto nem aninhada em
// venda. A garantia é a tag json:"-" no próprio modelo.
func TestSenhaNuncaSerializada(t *testing.T) {
	u := Usuario{
		ID:            1,
		NomeDeUsuario: "maria",
		Senha:         "$2a$10$hash-bcrypt-qualquer",
		Papel:         PapelAdmin,
	}

	bruto, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(bruto), "senha")
	assert.NotContains(t, string(bruto), "password")
	assert.NotContains(t, string(bruto), "$2a$")

	var campos map[string]any
	require.NoError(t, json.Unmarshal(bruto, &campos))
	assert.Contains(t, campos, "username")
	assert.Contains(t, campos, "role")
}

func TestPapelValido(t *testing.T) {
	assert.True(t, PapelValido(PapelAdmin))
	assert.True(t, PapelValido(PapelUsuario))
	assert.False(t, PapelValido(""))
	assert.False(t, PapelValido("root"))
}
