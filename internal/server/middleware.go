// internal/server/middleware.go
package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type escritorComStatus struct {
	http.ResponseWriter
	status int
}

func (w *escritorComStatus) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// middlewareRequestID marca cada requisição com um id próprio, devolvido no
// cabeçalho X-Request-ID e usado no log de acesso.
func middlewareRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		r.Header.Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// middlewareAcesso loga método, rota, status e duração de cada requisição.
func middlewareAcesso(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			escritor := &escritorComStatus{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(escritor, r)
			log.Info("requisição atendida",
				zap.String("requestId", r.Header.Get("X-Request-ID")),
				zap.String("metodo", r.Method),
				zap.String("caminho", r.URL.Path),
				zap.Int("status", escritor.status),
				zap.Duration("duracao", time.Since(inicio)),
			)
		})
	}
}
