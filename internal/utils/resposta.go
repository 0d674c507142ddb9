// internal/utils/resposta.go
package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/apperr"
)

// ResponderJSON escreve o corpo como JSON com o status dado.
func ResponderJSON(w http.ResponseWriter, status int, corpo any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if corpo != nil {
		_ = json.NewEncoder(w).Encode(corpo)
	}
}

// ResponderErro traduz o erro para status + mensagem via apperr. Erros
// internos saem genéricos para o cliente e detalhados no log.
func ResponderErro(w http.ResponseWriter, log *zap.Logger, err error) {
	status := apperr.StatusHTTP(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error("erro interno", zap.Error(err))
	}
	ResponderJSON(w, status, map[string]any{
		"statusCode": status,
		"message":    apperr.MensagemHTTP(err),
	})
}
