// internal/logger/logger.go
package logger

import (
	"os"

	"go.uber.org/zap"
)

// Novo cria o logger da aplicação. APP_ENV=development liga o formato legível
// de console; qualquer outro valor usa o JSON de produção.
func Novo() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
