// internal/produto/handler.go
package produto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/cache"
	"github.com/TechMarket/api-vendas/internal/utils"
)

const chaveListaProdutos = "products_all"

func chaveProduto(id uint) string { return fmt.Sprintf("product_%d", id) }

type Handler struct {
	Repo  *Repository
	Cache *cache.Cache
	Log   *zap.Logger
}

func NewHandler(repo *Repository, c *cache.Cache, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, Cache: c, Log: log}
}

type criarProdutoInput struct {
	Nome      string  `json:"name"`
	Preco     float64 `json:"price"`
	Estoque   int     `json:"stock"`
	Categoria string  `json:"category"`
	Descricao *string `json:"description"`
	ImageURL  *string `json:"imageUrl"`
}

type atualizarProdutoInput struct {
	Nome      *string  `json:"name"`
	Preco     *float64 `json:"price"`
	Estoque   *int     `json:"stock"`
	Categoria *string  `json:"category"`
	Descricao *string  `json:"description"`
	ImageURL  *string  `json:"imageUrl"`
}

// camposDeAtualizacao monta o mapa de colunas a gravar a partir dos campos
// presentes no corpo. Campos omitidos ficam fora do mapa; em particular,
// estoque ausente nunca entra no UPDATE.
func camposDeAtualizacao(corpo atualizarProdutoInput) (map[string]any, error) {
	campos := map[string]any{}
	if corpo.Nome != nil {
		nome := strings.TrimSpace(*corpo.Nome)
		if nome == "" {
			return nil, apperr.Validacao("Nome não pode ser vazio")
		}
		campos["nome"] = nome
	}
	if corpo.Preco != nil {
		if *corpo.Preco <= 0 {
			return nil, apperr.Validacao("Preço deve ser positivo")
		}
		campos["preco"] = *corpo.Preco
	}
	if corpo.Estoque != nil {
		if *corpo.Estoque < 0 {
			return nil, apperr.Validacao("Estoque não pode ser negativo")
		}
		campos["estoque"] = *corpo.Estoque
	}
	if corpo.Categoria != nil {
		if *corpo.Categoria == "" {
			return nil, apperr.Validacao("Categoria não pode ser vazia")
		}
		campos["categoria"] = *corpo.Categoria
	}
	if corpo.Descricao != nil {
		campos["descricao"] = *corpo.Descricao
	}
	if corpo.ImageURL != nil {
		campos["image_url"] = *corpo.ImageURL
	}
	return campos, nil
}

// POST /products
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var corpo criarProdutoInput
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		utils.ResponderErro(w, h.Log, apperr.Validacao("JSON mal formado"))
		return
	}

	corpo.Nome = strings.TrimSpace(corpo.Nome)
	if corpo.Nome == "" || corpo.Preco <= 0 || corpo.Estoque < 0 || corpo.Categoria == "" {
		utils.ResponderErro(w, h.Log, apperr.Validacao(
			"Nome, preço positivo, estoque não negativo e categoria são obrigatórios"))
		return
	}

	p := &Produto{
		Nome:      corpo.Nome,
		Preco:     corpo.Preco,
		Estoque:   corpo.Estoque,
		Categoria: corpo.Categoria,
		Descricao: corpo.Descricao,
		ImageURL:  corpo.ImageURL,
	}
	if err := h.Repo.Criar(r.Context(), p); err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	h.Cache.Remover(r.Context(), chaveListaProdutos)
	h.Log.Info("produto criado", zap.String("nome", p.Nome), zap.Uint("id", p.ID))
	utils.ResponderJSON(w, http.StatusCreated, p)
}

// GET /products
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtro, err := filtroDaQuery(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	produtos, err := h.Repo.Listar(r.Context(), filtro)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}
	if produtos == nil {
		produtos = []Produto{}
	}

	utils.ResponderJSON(w, http.StatusOK, produtos)
}

// GET /products/categories
func (h *Handler) Categorias(w http.ResponseWriter, r *http.Request) {
	categorias, err := h.Repo.Categorias(r.Context())
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}
	if categorias == nil {
		categorias = []string{}
	}
	utils.ResponderJSON(w, http.StatusOK, categorias)
}

// GET /products/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	var p Produto
	if h.Cache.BuscarJSON(r.Context(), chaveProduto(id), &p) {
		utils.ResponderJSON(w, http.StatusOK, &p)
		return
	}

	encontrado, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	h.Cache.GravarJSON(r.Context(), chaveProduto(id), encontrado, cache.TTLPadrao)
	utils.ResponderJSON(w, http.StatusOK, encontrado)
}

// PUT /products/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	var corpo atualizarProdutoInput
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		utils.ResponderErro(w, h.Log, apperr.Validacao("JSON mal formado"))
		return
	}

	campos, err := camposDeAtualizacao(corpo)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	p, err := h.Repo.AtualizarCampos(r.Context(), id, campos)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	h.Cache.Remover(r.Context(), chaveListaProdutos, chaveProduto(id))
	h.Log.Info("produto atualizado", zap.Uint("id", id))
	utils.ResponderJSON(w, http.StatusOK, p)
}

// DELETE /products/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	if err := h.Repo.Deletar(r.Context(), id); err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	h.Cache.Remover(r.Context(), chaveListaProdutos, chaveProduto(id))
	h.Log.Info("produto removido", zap.Uint("id", id))
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "Produto removido com sucesso"})
}

func idDaRota(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, apperr.Validacao("ID do produto inválido")
	}
	return uint(id), nil
}

func filtroDaQuery(r *http.Request) (Filtro, error) {
	q := r.URL.Query()
	filtro := Filtro{
		Busca:     q.Get("search"),
		Categoria: q.Get("category"),
	}
	if v := q.Get("minPrice"); v != "" {
		minimo, err := strconv.ParseFloat(v, 64)
		if err != nil || minimo < 0 {
			return Filtro{}, apperr.Validacao("minPrice inválido: %s", v)
		}
		filtro.PrecoMin = &minimo
	}
	if v := q.Get("maxPrice"); v != "" {
		maximo, err := strconv.ParseFloat(v, 64)
		if err != nil || maximo < 0 {
			return Filtro{}, apperr.Validacao("maxPrice inválido: %s", v)
		}
		filtro.PrecoMax = &maximo
	}
	return filtro, nil
}
