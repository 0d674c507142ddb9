package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechMarket/api-vendas/internal/usuario"
)

func tokenPara(t *testing.T, j *JWT, u *usuario.Usuario) string {
	t.Helper()
	token, err := j.GerarToken(u)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestMiddlewareSemTokenNega(t *testing.T) {
	j := NovoJWT("segredo-de-teste", time.Hour)

	alcancado := false
	h := j.MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alcancado = true
	}))

	req := httptest.NewRequest("GET", "/sales", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, alcancado)
}

func TestMiddlewareTokenInvalidoNega(t *testing.T) {
	j := NovoJWT("segredo-de-teste", time.Hour)

	h := j.MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/sales", nil)
	req.Header.Set("Authorization", "Bearer lixo")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareInjetaIdentidade(t *testing.T) {
	j := NovoJWT("segredo-de-teste", time.Hour)
	u := &usuario.Usuario{ID: 42, NomeDeUsuario: "joao", Papel: usuario.PapelUsuario}

	var visto *UsuarioAutenticado
	h := j.MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto, _ = UsuarioDoContexto(r.Context())
	}))

	req := httptest.NewRequest("GET", "/sales", nil)
	req.Header.Set("Authorization", tokenPara(t, j, u))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, visto)
	assert.Equal(t, uint(42), visto.ID)
	assert.Equal(t, "joao", visto.Username)
	assert.Equal(t, usuario.PapelUsuario, visto.Papel)
}

func TestRequirePapeis(t *testing.T) {
	j := NovoJWT("segredo-de-teste", time.Hour)
	admin := &usuario.Usuario{ID: 1, NomeDeUsuario: "admin", Papel: usuario.PapelAdmin}
	comum := &usuario.Usuario{ID: 2, NomeDeUsuario: "joao", Papel: usuario.PapelUsuario}

	montar := func(papeis ...string) http.Handler {
		return j.MiddlewareAutenticacao(RequirePapeis(papeis...)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})))
	}
	chamar := func(h http.Handler, autorizacao string) int {
		req := httptest.NewRequest("GET", "/admin", nil)
		if autorizacao != "" {
			req.Header.Set("Authorization", autorizacao)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	// papel exigido presente
	assert.Equal(t, http.StatusNoContent, chamar(montar(usuario.PapelAdmin), tokenPara(t, j, admin)))
	// papel fora do conjunto
	assert.Equal(t, http.StatusForbidden, chamar(montar(usuario.PapelAdmin), tokenPara(t, j, comum)))
	// conjunto vazio: qualquer autenticado passa
	assert.Equal(t, http.StatusNoContent, chamar(montar(), tokenPara(t, j, comum)))
	// sem identidade nem o conjunto vazio passa
	assert.Equal(t, http.StatusUnauthorized, chamar(montar(), ""))
}

func TestRequirePapeisSemMiddlewareDeAutenticacao(t *testing.T) {
	// rota mal registrada, sem autenticação antes do guard: nega
	h := RequirePapeis(usuario.PapelAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/admin", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
