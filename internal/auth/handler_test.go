package auth

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/usuario"
	"github.com/TechMarket/api-vendas/internal/utils"
)

type buscadorFalso struct {
	porNome map[string]*usuario.Usuario
}

func (b *buscadorFalso) BuscarPorNomeDeUsuario(_ context.Context, nome string) (*usuario.Usuario, error) {
	if u, ok := b.porNome[nome]; ok {
		return u, nil
	}
	return nil, apperr.NaoEncontrado("Usuário não encontrado")
}

func handlerDeLogin(t *testing.T) *Handler {
	t.Helper()
	hash, err := utils.HashSenha("senha-certa", 4)
	require.NoError(t, err)
	usuarios := &buscadorFalso{porNome: map[string]*usuario.Usuario{
		"maria": {ID: 1, NomeDeUsuario: "maria", Senha: hash, Papel: usuario.PapelAdmin},
	}}
	return NewHandler(usuarios, NovoJWT("segredo-de-teste", time.Hour), zap.NewNop())
}

func postLogin(h *Handler, corpo string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLoginComSucesso(t *testing.T) {
	h := handlerDeLogin(t)

	rec := postLogin(h, `{"username":"maria","password":"senha-certa"}`)
	require.Equal(t, 200, rec.Code)

	var resposta struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resposta))
	assert.NotEmpty(t, resposta.AccessToken)
	assert.Equal(t, "maria", resposta.User.Username)
	assert.Equal(t, usuario.PapelAdmin, resposta.User.Role)

	// o token emitido é aceito pelo próprio verificador
	claims, err := h.JWT.ValidarToken(resposta.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)

	// o hash da senha não aparece em lugar nenhum da resposta
	assert.NotContains(t, rec.Body.String(), "senha")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestLoginNaoRevelaQualCampoErrou(t *testing.T) {
	h := handlerDeLogin(t)

	senhaErrada := postLogin(h, `{"username":"maria","password":"senha-errada"}`)
	usuarioDesconhecido := postLogin(h, `{"username":"ninguem","password":"senha-certa"}`)

	assert.Equal(t, 401, senhaErrada.Code)
	assert.Equal(t, 401, usuarioDesconhecido.Code)
	// mesmíssima resposta nos dois casos
	assert.Equal(t, senhaErrada.Body.String(), usuarioDesconhecido.Body.String())
	assert.Contains(t, senhaErrada.Body.String(), "Credenciais inválidas")
}

func TestLoginEntradaInvalida(t *testing.T) {
	h := handlerDeLogin(t)

	assert.Equal(t, 400, postLogin(h, `{nao-é-json`).Code)
	assert.Equal(t, 400, postLogin(h, `{"username":"","password":"x"}`).Code)
	assert.Equal(t, 400, postLogin(h, `{"username":"maria","password":""}`).Code)
}
