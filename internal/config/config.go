// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config reúne tudo que vem do ambiente. O .env é carregado quando existe;
// em produção as variáveis chegam direto do ambiente.
type Config struct {
	Porta string

	DBHost    string
	DBUsuario string
	DBSenha   string
	DBNome    string
	DBPorta   string

	RedisAddr  string
	RedisSenha string

	JWTSecret    string
	JWTExpiracao time.Duration

	BcryptCusto int

	CORSOrigens []string
}

func Carregar() (*Config, error) {
	// Ignora ausência do arquivo: fora do dev as variáveis já estão no ambiente.
	_ = godotenv.Load()

	cfg := &Config{
		Porta:        ambienteOu("PORT", "8080"),
		DBHost:       ambienteOu("DB_HOST", "localhost"),
		DBUsuario:    ambienteOu("DB_USER", "postgres"),
		DBSenha:      ambienteOu("DB_PASSWORD", "postgres"),
		DBNome:       ambienteOu("DB_NAME", "techmarket"),
		DBPorta:      ambienteOu("DB_PORT", "5432"),
		RedisAddr:    ambienteOu("REDIS_ADDR", "localhost:6379"),
		RedisSenha:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiracao: 24 * time.Hour,
		BcryptCusto:  bcrypt.DefaultCost,
		CORSOrigens:  strings.Split(ambienteOu("CORS_ORIGENS", "http://localhost:3000"), ","),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET não definida")
	}

	if v := os.Getenv("JWT_EXPIRACAO_HORAS"); v != "" {
		horas, err := strconv.Atoi(v)
		if err != nil || horas <= 0 {
			return nil, fmt.Errorf("JWT_EXPIRACAO_HORAS inválida: %q", v)
		}
		cfg.JWTExpiracao = time.Duration(horas) * time.Hour
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		custo, err := strconv.Atoi(v)
		if err != nil || custo < bcrypt.MinCost || custo > bcrypt.MaxCost {
			return nil, fmt.Errorf("BCRYPT_COST inválido: %q", v)
		}
		cfg.BcryptCusto = custo
	}

	return cfg, nil
}

// DSN monta a string de conexão do Postgres.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUsuario, c.DBSenha, c.DBNome, c.DBPorta)
}

func ambienteOu(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}
