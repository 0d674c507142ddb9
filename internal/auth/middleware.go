// internal/auth/middleware.go
package auth

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/TechMarket/api-vendas/internal/utils"
)

type ctxKey string

const ctxUsuario ctxKey = "usuarioAutenticado"

// UsuarioAutenticado é a identidade extraída do token, repassada às
// operações de negócio via contexto da requisição.
type UsuarioAutenticado struct {
	ID       uint
	Username string
	Papel    string
}

// UsuarioDoContexto recupera a identidade colocada pelo middleware.
func UsuarioDoContexto(ctx context.Context) (*UsuarioAutenticado, bool) {
	u, ok := ctx.Value(ctxUsuario).(*UsuarioAutenticado)
	return u, ok
}

// MiddlewareAutenticacao exige um Bearer token válido e injeta a identidade
// no contexto.
func (j *JWT) MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token ausente"})
			return
		}
		claims, err := j.ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			utils.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token inválido"})
			return
		}
		id, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || id == 0 {
			utils.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token inválido"})
			return
		}
		ctx := context.WithValue(r.Context(), ctxUsuario, &UsuarioAutenticado{
			ID:       uint(id),
			Username: claims.Username,
			Papel:    claims.Role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePapeis libera a rota apenas para os papéis listados. Sem papéis
// declarados, qualquer chamador autenticado passa.
func RequirePapeis(papeis ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UsuarioDoContexto(r.Context())
			if !ok || u.Papel == "" {
				utils.ResponderJSON(w, http.StatusUnauthorized, map[string]string{"message": "Acesso negado: usuário não autenticado"})
				return
			}
			if len(papeis) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			for _, p := range papeis {
				if u.Papel == p {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.ResponderJSON(w, http.StatusForbidden, map[string]string{"message": "Acesso negado: perfil não autorizado"})
		})
	}
}
