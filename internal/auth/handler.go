// internal/auth/handler.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/usuario"
	"github.com/TechMarket/api-vendas/internal/utils"
)

// BuscadorDeUsuarios é o que o login precisa do repositório de usuários.
type BuscadorDeUsuarios interface {
	BuscarPorNomeDeUsuario(ctx context.Context, nome string) (*usuario.Usuario, error)
}

type Handler struct {
	Usuarios BuscadorDeUsuarios
	JWT      *JWT
	Log      *zap.Logger
}

func NewHandler(usuarios BuscadorDeUsuarios, jwt *JWT, log *zap.Logger) *Handler {
	return &Handler{Usuarios: usuarios, JWT: jwt, Log: log}
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResposta struct {
	AccessToken string           `json:"access_token"`
	Usuario     *usuario.Usuario `json:"user"`
}

// POST /auth/login
//
// Username desconhecido e senha errada produzem exatamente a mesma resposta,
// sem indicar qual campo falhou.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var corpo loginInput
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		utils.ResponderErro(w, h.Log, apperr.Validacao("JSON mal formado"))
		return
	}
	if corpo.Username == "" || corpo.Password == "" {
		utils.ResponderErro(w, h.Log, apperr.Validacao("Username e senha são obrigatórios"))
		return
	}

	u, err := h.Usuarios.BuscarPorNomeDeUsuario(r.Context(), corpo.Username)
	if err != nil {
		if apperr.EhTipo(err, apperr.TipoInterno) {
			utils.ResponderErro(w, h.Log, err)
			return
		}
		h.negarCredenciais(w, corpo.Username)
		return
	}
	if !utils.VerificarSenha(u.Senha, corpo.Password) {
		h.negarCredenciais(w, corpo.Username)
		return
	}

	token, err := h.JWT.GerarToken(u)
	if err != nil {
		utils.ResponderErro(w, h.Log, apperr.Interno(err, "Erro ao autenticar"))
		return
	}

	h.Log.Info("login efetuado", zap.String("username", u.NomeDeUsuario), zap.Uint("id", u.ID))
	utils.ResponderJSON(w, http.StatusOK, loginResposta{AccessToken: token, Usuario: u})
}

func (h *Handler) negarCredenciais(w http.ResponseWriter, username string) {
	h.Log.Warn("tentativa de login recusada", zap.String("username", username))
	utils.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"message": "Credenciais inválidas"})
}
