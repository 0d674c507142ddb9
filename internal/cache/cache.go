// internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TTLPadrao é a validade das entradas de leitura (listagens e buscas por id).
const TTLPadrao = 5 * time.Minute

// Cache é um leve embrulho de read-through sobre o redis. Toda operação é de
// melhor esforço: falha de cache vira log, nunca erro para o chamador.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

func Novo(rdb *redis.Client, log *zap.Logger) *Cache {
	return &Cache{rdb: rdb, log: log}
}

// BuscarJSON tenta preencher destino com o valor da chave. Retorna false em
// miss ou em qualquer falha.
func (c *Cache) BuscarJSON(ctx context.Context, chave string, destino any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	bruto, err := c.rdb.Get(ctx, chave).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("falha ao ler do cache", zap.String("chave", chave), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(bruto, destino); err != nil {
		c.log.Warn("entrada de cache corrompida", zap.String("chave", chave), zap.Error(err))
		return false
	}
	return true
}

// GravarJSON serializa e grava o valor com o TTL dado.
func (c *Cache) GravarJSON(ctx context.Context, chave string, valor any, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	bruto, err := json.Marshal(valor)
	if err != nil {
		c.log.Warn("falha ao serializar para o cache", zap.String("chave", chave), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, chave, bruto, ttl).Err(); err != nil {
		c.log.Warn("falha ao gravar no cache", zap.String("chave", chave), zap.Error(err))
	}
}

// Remover invalida as chaves dadas. A invalidação é consultiva: uma corrida
// com uma leitura concorrente pode repovoar um valor velho até o TTL vencer.
func (c *Cache) Remover(ctx context.Context, chaves ...string) {
	if c == nil || c.rdb == nil || len(chaves) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, chaves...).Err(); err != nil {
		c.log.Warn("falha ao invalidar cache", zap.Strings("chaves", chaves), zap.Error(err))
	}
}
