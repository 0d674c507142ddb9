package auth

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechMarket/api-vendas/internal/usuario"
)

var usuarioDeTeste = &usuario.Usuario{
	ID:            7,
	NomeDeUsuario: "maria",
	Papel:         usuario.PapelAdmin,
}

func TestGerarEValidarToken(t *testing.T) {
	j := NovoJWT("segredo-de-teste", time.Hour)

	token, err := j.GerarToken(usuarioDeTeste)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, usuario.PapelAdmin, claims.Role)
}

func TestTokenExpiradoRejeitado(t *testing.T) {
	j := NovoJWT("segredo-de-teste", -time.Minute)

	token, err := j.GerarToken(usuarioDeTeste)
	require.NoError(t, err)

	_, err = j.ValidarToken(token)
	assert.Error(t, err)
}

func TestTokenComSegredoErradoRejeitado(t *testing.T) {
	emissor := NovoJWT("segredo-a", time.Hour)
	verificador := NovoJWT("segredo-b", time.Hour)

	token, err := emissor.GerarToken(usuarioDeTeste)
	require.NoError(t, err)

	_, err = verificador.ValidarToken(token)
	assert.Error(t, err)
}

func TestTokenSemClaimsObrigatoriasRejeitado(t *testing.T) {
	j := NovoJWT("segredo-de-teste", time.Hour)

	// token assinado com o segredo certo mas sem papel
	claims := &Claims{
		Username: "maria",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	bruto, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte("segredo-de-teste"))
	require.NoError(t, err)

	_, err = j.ValidarToken(bruto)
	assert.Error(t, err)
}

func TestTokenComAlgoritmoErradoRejeitado(t *testing.T) {
	j := NovoJWT("segredo-de-teste", time.Hour)

	// alg=none não passa
	claims := &Claims{
		Username: "maria",
		Role:     usuario.PapelUsuario,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	bruto, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.ValidarToken(bruto)
	assert.Error(t, err)
}
