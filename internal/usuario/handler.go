// internal/usuario/handler.go
package usuario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/cache"
	"github.com/TechMarket/api-vendas/internal/utils"
)

const chaveListaUsuarios = "users_all"

func chaveUsuario(id uint) string { return fmt.Sprintf("user_%d", id) }

type Handler struct {
	Repo        *Repository
	Cache       *cache.Cache
	Log         *zap.Logger
	BcryptCusto int
}

func NewHandler(repo *Repository, c *cache.Cache, log *zap.Logger, bcryptCusto int) *Handler {
	return &Handler{Repo: repo, Cache: c, Log: log, BcryptCusto: bcryptCusto}
}

type criarUsuarioInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type atualizarUsuarioInput struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// POST /users
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var corpo criarUsuarioInput
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		utils.ResponderErro(w, h.Log, apperr.Validacao("JSON mal formado"))
		return
	}

	if corpo.Username == "" || corpo.Password == "" {
		utils.ResponderErro(w, h.Log, apperr.Validacao("Username e senha são obrigatórios"))
		return
	}

	papel := corpo.Role
	if papel == "" {
		papel = PapelUsuario
	}
	if !PapelValido(papel) {
		utils.ResponderErro(w, h.Log, apperr.Validacao("Papel inválido: %s", corpo.Role))
		return
	}

	hash, err := utils.HashSenha(corpo.Password, h.BcryptCusto)
	if err != nil {
		utils.ResponderErro(w, h.Log, apperr.Interno(err, "Erro ao criar usuário"))
		return
	}

	u := &Usuario{NomeDeUsuario: corpo.Username, Senha: hash, Papel: papel}
	if err := h.Repo.Criar(r.Context(), u); err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	h.Cache.Remover(r.Context(), chaveListaUsuarios)
	h.Log.Info("usuário criado",
		zap.String("username", u.NomeDeUsuario), zap.Uint("id", u.ID))
	utils.ResponderJSON(w, http.StatusCreated, u)
}

// GET /users
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var usuarios []Usuario
	if h.Cache.BuscarJSON(r.Context(), chaveListaUsuarios, &usuarios) {
		utils.ResponderJSON(w, http.StatusOK, usuarios)
		return
	}

	usuarios, err := h.Repo.ListarTodos(r.Context())
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	h.Cache.GravarJSON(r.Context(), chaveListaUsuarios, usuarios, cache.TTLPadrao)
	utils.ResponderJSON(w, http.StatusOK, usuarios)
}

// GET /users/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	var u Usuario
	if h.Cache.BuscarJSON(r.Context(), chaveUsuario(id), &u) {
		utils.ResponderJSON(w, http.StatusOK, &u)
		return
	}

	encontrado, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	h.Cache.GravarJSON(r.Context(), chaveUsuario(id), encontrado, cache.TTLPadrao)
	utils.ResponderJSON(w, http.StatusOK, encontrado)
}

// PUT /users/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	var corpo atualizarUsuarioInput
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		utils.ResponderErro(w, h.Log, apperr.Validacao("JSON mal formado"))
		return
	}

	u, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	if corpo.Username != nil {
		if *corpo.Username == "" {
			utils.ResponderErro(w, h.Log, apperr.Validacao("Username não pode ser vazio"))
			return
		}
		u.NomeDeUsuario = *corpo.Username
	}
	if corpo.Role != nil {
		if !PapelValido(*corpo.Role) {
			utils.ResponderErro(w, h.Log, apperr.Validacao("Papel inválido: %s", *corpo.Role))
			return
		}
		u.Papel = *corpo.Role
	}
	if corpo.Password != nil && *corpo.Password != "" {
		hash, err := utils.HashSenha(*corpo.Password, h.BcryptCusto)
		if err != nil {
			utils.ResponderErro(w, h.Log, apperr.Interno(err, "Erro ao atualizar usuário"))
			return
		}
		u.Senha = hash
	}

	if err := h.Repo.Atualizar(r.Context(), u); err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	h.Cache.Remover(r.Context(), chaveListaUsuarios, chaveUsuario(id))
	utils.ResponderJSON(w, http.StatusOK, u)
}

// DELETE /users/{id}
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

	h.Cache.Remover(r.Context(), chaveListaUsuarios, chaveUsuario(id))
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "Usuário removido com sucesso"})
}

func idDaRota(r *http.Request) (uint, error) {
	bruto := mux.Vars(r)["id"]
	id, err := strconv.Atoi(bruto)
	if err != nil || id <= 0 {
		return 0, apperr.Validacao("ID do usuário inválido")
	}
	return uint(id), nil
}
