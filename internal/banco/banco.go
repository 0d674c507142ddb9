// internal/banco/banco.go
package banco

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	codigoUnicidade        = "23505"
	codigoChaveEstrangeira = "23503"
)

// Conectar abre a conexão com o Postgres.
func Conectar(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// EhViolacaoUnicidade identifica violação de índice único (nome de produto,
// username).
func EhViolacaoUnicidade(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUnicidade
}

// EhViolacaoChaveEstrangeira identifica violação de FK, usada para barrar a
// remoção de registros ainda referenciados.
func EhViolacaoChaveEstrangeira(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoChaveEstrangeira
}
