// internal/server/router_test.go
package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/auth"
	"github.com/TechMarket/api-vendas/internal/produto"
	"github.com/TechMarket/api-vendas/internal/usuario"
	"github.com/TechMarket/api-vendas/internal/venda"
)

// repoVendasVazio devolve listas vazias; os testes de rota só exercitam a
// camada de autenticação e papéis, não o armazenamento.
type repoVendasVazio struct{}

func (r *repoVendasVazio) EmTransacao(ctx context.Context, fn func(tx venda.Repository) error) error {
	return fn(r)
}
func (r *repoVendasVazio) BuscarUsuario(context.Context, uint) (*usuario.Usuario, error) {
	return nil, nil
}
func (r *repoVendasVazio) BuscarProduto(context.Context, uint) (*produto.Produto, error) {
	return nil, nil
}
func (r *repoVendasVazio) BaixarEstoque(context.Context, uint, int) (int64, error) { return 0, nil }
func (r *repoVendasVazio) CriarVenda(context.Context, *venda.Venda) error          { return nil }
func (r *repoVendasVazio) BuscarPorID(context.Context, uint) (*venda.Venda, error) {
	return nil, nil
}
func (r *repoVendasVazio) ListarTodas(context.Context) ([]venda.Venda, error) {
	return []venda.Venda{}, nil
}
func (r *repoVendasVazio) ListarPorUsuario(context.Context, uint) ([]venda.Venda, error) {
	return []venda.Venda{}, nil
}
func (r *repoVendasVazio) AtualizarCampos(context.Context, uint, venda.AtualizarVendaInput) (*venda.Venda, error) {
	return nil, nil
}
func (r *repoVendasVazio) Deletar(context.Context, uint) error { return nil }

func routerDeTeste(t *testing.T) (http.Handler, *auth.JWT) {
	t.Helper()
	log := zap.NewNop()
	jwt := auth.NovoJWT("segredo-de-teste", time.Hour)

	d := Dependencias{
		JWT:      jwt,
		Auth:     auth.NewHandler(nil, jwt, log),
		Usuarios: usuario.NewHandler(nil, nil, log, 4),
		Produtos: produto.NewHandler(nil, nil, log),
		Vendas:   venda.NewHandler(venda.NewUseCase(&repoVendasVazio{}, nil, log), log),
		Log:      log,
	}
	return NovoRouter(d), jwt
}

func tokenDe(t *testing.T, jwt *auth.JWT, id uint, nome, papel string) string {
	t.Helper()
	token, err := jwt.GerarToken(&usuario.Usuario{ID: id, NomeDeUsuario: nome, Papel: papel})
	require.NoError(t, err)
	return token
}

func TestRotaMinhasComprasExigePapelUser(t *testing.T) {
	router, jwt := routerDeTeste(t)

	cliente := tokenDe(t, jwt, 1, "cliente", usuario.PapelUsuario)
	admin := tokenDe(t, jwt, 2, "gerente", usuario.PapelAdmin)

	req := httptest.NewRequest("GET", "/sales/my", nil)
	req.Header.Set("Authorization", "Bearer "+cliente)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/sales/my", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRotasDeVendaExigemAutenticacao(t *testing.T) {
	router, _ := routerDeTeste(t)

	req := httptest.NewRequest("GET", "/sales", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest("GET", "/sales/my", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListagemDeUsuariosSomenteAdmin(t *testing.T) {
	router, jwt := routerDeTeste(t)

	cliente := tokenDe(t, jwt, 1, "cliente", usuario.PapelUsuario)
	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer "+cliente)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
