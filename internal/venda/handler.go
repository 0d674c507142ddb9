// internal/venda/handler.go
package venda

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/auth"
	"github.com/TechMarket/api-vendas/internal/usuario"
	"github.com/TechMarket/api-vendas/internal/utils"
)

type Handler struct {
	UseCase *UseCase
	Log     *zap.Logger
}

func NewHandler(uc *UseCase, log *zap.Logger) *Handler {
	return &Handler{UseCase: uc, Log: log}
}

// POST /sales
//
// O comprador é sempre o dono do token; o corpo não escolhe o usuário.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		utils.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"message": "Usuário não autenticado"})
		return
	}

	var entrada CriarVendaInput
	if err := json.NewDecoder(r.Body).Decode(&entrada); err != nil {
		utils.ResponderErro(w, h.Log, apperr.Validacao("JSON mal formado"))
		return
	}

	v, err := h.UseCase.Criar(r.Context(), u.ID, entrada)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	utils.ResponderJSON(w, http.StatusCreated, v)
}

// GET /sales — admin enxerga tudo, os demais só as próprias vendas.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		utils.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"message": "Usuário não autenticado"})
		return
	}

	var (
		vendas []Venda
		err    error
	)
	if u.Papel == usuario.PapelAdmin {
		vendas, err = h.UseCase.ListarTodas(r.Context())
	} else {
		vendas, err = h.UseCase.ListarPorUsuario(r.Context(), u.ID)
	}
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	utils.ResponderJSON(w, http.StatusOK, vendas)
}

// GET /sales/my
func (h *Handler) ListarMinhas(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		utils.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"message": "Usuário não autenticado"})
		return
	}

	vendas, err := h.UseCase.ListarPorUsuario(r.Context(), u.ID)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	utils.ResponderJSON(w, http.StatusOK, vendas)
}

// GET /sales/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	v, err := h.UseCase.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	utils.ResponderJSON(w, http.StatusOK, v)
}

// PUT /sales/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	var entrada AtualizarVendaInput
	if err := json.NewDecoder(r.Body).Decode(&entrada); err != nil {
		utils.ResponderErro(w, h.Log, apperr.Validacao("JSON mal formado"))
		return
	}

	v, err := h.UseCase.Atualizar(r.Context(), id, entrada)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	utils.ResponderJSON(w, http.StatusOK, v)
}

// DELETE /sales/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	if err := h.UseCase.Deletar(r.Context(), id); err != nil {
		utils.ResponderErro(w, h.Log, err)
		return
	}

	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "Venda removida com sucesso"})
}

func idDaRota(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, apperr.Validacao("ID da venda deve ser um número inteiro positivo")
	}
	return uint(id), nil
}
