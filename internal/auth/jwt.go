// internal/auth/jwt.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/TechMarket/api-vendas/internal/usuario"
)

// Claims embutidas no token de sessão: id, username e papel do titular.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWT assina e valida tokens HS256 com segredo compartilhado.
type JWT struct {
	segredo  []byte
	validade time.Duration
}

func NovoJWT(segredo string, validade time.Duration) *JWT {
	return &JWT{segredo: []byte(segredo), validade: validade}
}

// GerarToken emite um token para o usuário com a validade configurada.
func (j *JWT) GerarToken(u *usuario.Usuario) (string, error) {
	agora := time.Now()
	claims := &Claims{
		Username: u.NomeDeUsuario,
		Role:     u.Papel,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(agora),
			ExpiresAt: jwt.NewNumericDate(agora.Add(j.validade)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.segredo)
}

// ValidarToken verifica assinatura e expiração e devolve as claims.
func (j *JWT) ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return j.segredo, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	if claims.Subject == "" || claims.Username == "" || claims.Role == "" {
		return nil, fmt.Errorf("token sem informações obrigatórias")
	}
	return claims, nil
}
