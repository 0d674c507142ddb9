package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusHTTP(t *testing.T) {
	casos := []struct {
		err    error
		status int
	}{
		{Validacao("campo ausente"), http.StatusBadRequest},
		{RegraDeNegocio("estoque insuficiente"), http.StatusBadRequest},
		{NaoEncontrado("produto não encontrado"), http.StatusNotFound},
		{Conflito("corrida de estoque"), http.StatusConflict},
		{Interno(fmt.Errorf("conexão caiu"), "erro ao gravar"), http.StatusInternalServerError},
		{fmt.Errorf("erro qualquer"), http.StatusInternalServerError},
	}
	for _, caso := range casos {
		assert.Equal(t, caso.status, StatusHTTP(caso.err))
	}
}

func TestMensagemHTTPNaoVazaDetalheInterno(t *testing.T) {
	err := Interno(fmt.Errorf("dial tcp 10.0.0.5: connection refused"), "Erro ao criar venda")
	assert.Equal(t, MensagemInterna, MensagemHTTP(err))
	// o detalhe continua disponível para o log
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMensagemHTTPDeErroDeNegocio(t *testing.T) {
	err := RegraDeNegocio("Estoque insuficiente para o produto %s (ID: %d)", "Teclado", 10)
	assert.Equal(t, "Estoque insuficiente para o produto Teclado (ID: 10)", MensagemHTTP(err))
}

func TestEhTipoComErroEmbrulhado(t *testing.T) {
	base := Conflito("corrida perdida")
	embrulhado := fmt.Errorf("criando venda: %w", base)

	assert.True(t, EhTipo(embrulhado, TipoConflito))
	assert.False(t, EhTipo(embrulhado, TipoValidacao))
	assert.Equal(t, http.StatusConflict, StatusHTTP(embrulhado))
}
