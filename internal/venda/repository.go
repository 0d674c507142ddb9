// internal/venda/repository.go
package venda

import (
	"context"

	"github.com/TechMarket/api-vendas/internal/produto"
	"github.com/TechMarket/api-vendas/internal/usuario"
)

// Repository é o contrato de armazenamento da venda. Buscas por id devolvem
// nil sem erro quando o registro não existe.
type Repository interface {
	// EmTransacao executa fn dentro de uma transação; o Repository entregue a
	// fn enxerga os escritos pendentes e tudo é desfeito se fn retornar erro.
	EmTransacao(ctx context.Context, fn func(tx Repository) error) error

	BuscarUsuario(ctx context.Context, id uint) (*usuario.Usuario, error)
	BuscarProduto(ctx context.Context, id uint) (*produto.Produto, error)

	// BaixarEstoque aplica o decremento condicional: só atualiza onde o
	// estoque atual comporta a quantidade, devolvendo quantas linhas mudaram.
	BaixarEstoque(ctx context.Context, produtoID uint, quantidade int) (int64, error)

	CriarVenda(ctx context.Context, v *Venda) error
	BuscarPorID(ctx context.Context, id uint) (*Venda, error)
	ListarTodas(ctx context.Context) ([]Venda, error)
	ListarPorUsuario(ctx context.Context, usuarioID uint) ([]Venda, error)
	AtualizarCampos(ctx context.Context, id uint, entrada AtualizarVendaInput) (*Venda, error)
	Deletar(ctx context.Context, id uint) error
}
