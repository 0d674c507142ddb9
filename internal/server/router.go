// internal/server/router.go
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/auth"
	"github.com/TechMarket/api-vendas/internal/produto"
	"github.com/TechMarket/api-vendas/internal/usuario"
	"github.com/TechMarket/api-vendas/internal/venda"
)

type Dependencias struct {
	JWT      *auth.JWT
	Auth     *auth.Handler
	Usuarios *usuario.Handler
	Produtos *produto.Handler
	Vendas   *venda.Handler

	Log         *zap.Logger
	CORSOrigens []string
}

// NovoRouter monta todas as rotas. O conjunto de papéis exigido por cada
// rota fica declarado aqui, no registro.
func NovoRouter(d Dependencias) http.Handler {
	r := mux.NewRouter()
	r.Use(middlewareRequestID)
	r.Use(middlewareAcesso(d.Log))

	// Qualquer autenticado; conjunto vazio de papéis.
	autenticado := func(h http.HandlerFunc) http.Handler {
		return d.JWT.MiddlewareAutenticacao(auth.RequirePapeis()(h))
	}
	somenteAdmin := func(h http.HandlerFunc) http.Handler {
		return d.JWT.MiddlewareAutenticacao(auth.RequirePapeis(usuario.PapelAdmin)(h))
	}
	somenteUsuario := func(h http.HandlerFunc) http.Handler {
		return d.JWT.MiddlewareAutenticacao(auth.RequirePapeis(usuario.PapelUsuario)(h))
	}

	// Autenticação
	r.HandleFunc("/auth/login", d.Auth.Login).Methods("POST")

	// Usuários (cadastro é público)
	r.HandleFunc("/users", d.Usuarios.Criar).Methods("POST")
	r.Handle("/users", somenteAdmin(d.Usuarios.Listar)).Methods("GET")
	r.Handle("/users/{id}", somenteAdmin(d.Usuarios.BuscarPorID)).Methods("GET")
	r.Handle("/users/{id}", somenteAdmin(d.Usuarios.Atualizar)).Methods("PUT")
	r.Handle("/users/{id}", somenteAdmin(d.Usuarios.Deletar)).Methods("DELETE")

	// Produtos (leitura pública, escrita de admin)
	r.HandleFunc("/products", d.Produtos.Listar).Methods("GET")
	r.HandleFunc("/products/categories", d.Produtos.Categorias).Methods("GET")
	r.HandleFunc("/products/{id}", d.Produtos.BuscarPorID).Methods("GET")
	r.Handle("/products", somenteAdmin(d.Produtos.Criar)).Methods("POST")
	r.Handle("/products/{id}", somenteAdmin(d.Produtos.Atualizar)).Methods("PUT")
	r.Handle("/products/{id}", somenteAdmin(d.Produtos.Deletar)).Methods("DELETE")

	// Vendas (sempre autenticado)
	r.Handle("/sales", autenticado(d.Vendas.Criar)).Methods("POST")
	r.Handle("/sales", autenticado(d.Vendas.Listar)).Methods("GET")
	// Visão "minhas compras" é do papel user; admin consulta por /sales.
	r.Handle("/sales/my", somenteUsuario(d.Vendas.ListarMinhas)).Methods("GET")
	r.Handle("/sales/{id}", somenteAdmin(d.Vendas.BuscarPorID)).Methods("GET")
	r.Handle("/sales/{id}", somenteAdmin(d.Vendas.Atualizar)).Methods("PUT")
	r.Handle("/sales/{id}", somenteAdmin(d.Vendas.Deletar)).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: d.CORSOrigens,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(r)
}
