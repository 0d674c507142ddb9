// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipo classifica um erro da aplicação para fins de resposta HTTP e log.
type Tipo int

const (
	TipoValidacao Tipo = iota
	TipoRegraDeNegocio
	TipoNaoEncontrado
	TipoConflito
	TipoInterno
)

// MensagemInterna é o que o cliente recebe quando algo falha no servidor.
// O detalhe real fica só no log.
const MensagemInterna = "Erro interno do servidor"

type Erro struct {
	Tipo     Tipo
	Mensagem string
	Causa    error
}

func (e *Erro) Error() string {
	if e.Causa != nil {
		return fmt.Sprintf("%s: %v", e.Mensagem, e.Causa)
	}
	return e.Mensagem
}

func (e *Erro) Unwrap() error { return e.Causa }

func Validacao(formato string, args ...any) *Erro {
	return &Erro{Tipo: TipoValidacao, Mensagem: fmt.Sprintf(formato, args...)}
}

func RegraDeNegocio(formato string, args ...any) *Erro {
	return &Erro{Tipo: TipoRegraDeNegocio, Mensagem: fmt.Sprintf(formato, args...)}
}

func NaoEncontrado(formato string, args ...any) *Erro {
	return &Erro{Tipo: TipoNaoEncontrado, Mensagem: fmt.Sprintf(formato, args...)}
}

func Conflito(formato string, args ...any) *Erro {
	return &Erro{Tipo: TipoConflito, Mensagem: fmt.Sprintf(formato, args...)}
}

func Interno(causa error, mensagem string) *Erro {
	return &Erro{Tipo: TipoInterno, Mensagem: mensagem, Causa: causa}
}

// StatusHTTP devolve o código de resposta para o erro. Erros que não são
// *Erro contam como internos.
func StatusHTTP(err error) int {
	var e *Erro
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Tipo {
	case TipoValidacao, TipoRegraDeNegocio:
		return http.StatusBadRequest
	case TipoNaoEncontrado:
		return http.StatusNotFound
	case TipoConflito:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MensagemHTTP devolve a mensagem que pode ir para o cliente. Detalhes de
// erros internos nunca vazam na resposta.
func MensagemHTTP(err error) string {
	var e *Erro
	if !errors.As(err, &e) || e.Tipo == TipoInterno {
		return MensagemInterna
	}
	return e.Mensagem
}

// EhTipo informa se err é um *Erro do tipo dado.
func EhTipo(err error, t Tipo) bool {
	var e *Erro
	return errors.As(err, &e) && e.Tipo == t
}
