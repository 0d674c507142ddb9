package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/auth"
	"github.com/TechMarket/api-vendas/internal/banco"
	"github.com/TechMarket/api-vendas/internal/cache"
	"github.com/TechMarket/api-vendas/internal/config"
	"github.com/TechMarket/api-vendas/internal/logger"
	"github.com/TechMarket/api-vendas/internal/produto"
	"github.com/TechMarket/api-vendas/internal/server"
	"github.com/TechMarket/api-vendas/internal/usuario"
	"github.com/TechMarket/api-vendas/internal/venda"
)

func main() {
	cfg, err := config.Carregar()
	if err != nil {
		log.Fatal("Erro na configuração: ", err)
	}

	zl, err := logger.Novo()
	if err != nil {
		log.Fatal("Erro ao criar logger: ", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := banco.Conectar(cfg.DSN())
	if err != nil {
		zl.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&usuario.Usuario{},
		&produto.Produto{},
		&venda.Venda{},
		&venda.ItemVenda{},
	); err != nil {
		zl.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisSenha,
	})
	ctx, cancelar := context.WithTimeout(context.Background(), 3*time.Second)
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Cache fora do ar não derruba a API; as leituras vão direto ao banco.
		zl.Warn("redis indisponível, seguindo sem cache", zap.Error(err))
	}
	cancelar()
	memoria := cache.Novo(rdb, zl)

	jwt := auth.NovoJWT(cfg.JWTSecret, cfg.JWTExpiracao)

	usuarioRepo := usuario.NewRepository(db)
	usuarioHandler := usuario.NewHandler(usuarioRepo, memoria, zl, cfg.BcryptCusto)

	produtoRepo := produto.NewRepository(db)
	produtoHandler := produto.NewHandler(produtoRepo, memoria, zl)

	vendaUseCase := venda.NewUseCase(venda.NewRepositorioGorm(db), memoria, zl)
	vendaHandler := venda.NewHandler(vendaUseCase, zl)

	authHandler := auth.NewHandler(usuarioRepo, jwt, zl)

	roteador := server.NovoRouter(server.Dependencias{
		JWT:         jwt,
		Auth:        authHandler,
		Usuarios:    usuarioHandler,
		Produtos:    produtoHandler,
		Vendas:      vendaHandler,
		Log:         zl,
		CORSOrigens: cfg.CORSOrigens,
	})

	zl.Info("servidor no ar", zap.String("porta", cfg.Porta))
	if err := http.ListenAndServe(":"+cfg.Porta, roteador); err != nil {
		zl.Fatal("servidor encerrado", zap.Error(err))
	}
}
