// internal/utils/password.go
package utils

import "golang.org/x/crypto/bcrypt"

// HashSenha gera o hash bcrypt da senha com o custo informado.
func HashSenha(senha string, custo int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), custo)
	return string(hash), err
}

// VerificarSenha compara hash bcrypt com a senha em texto puro. A comparação
// em tempo constante fica a cargo da própria biblioteca.
func VerificarSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}
