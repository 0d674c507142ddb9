// internal/venda/usecase.go
package venda

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/cache"
)

// toleranciaPreco é a diferença máxima aceita entre valores monetários
// enviados pelo cliente e os valores vigentes.
const toleranciaPreco = 0.01

const chaveListaVendas = "sales_all"

func chaveVenda(id uint) string { return fmt.Sprintf("sale_%d", id) }

// UseCase concentra as regras de negócio de vendas. A criação é o único
// caminho que coordena requisições concorrentes, e faz isso apenas com a
// transação do banco e a baixa condicional de estoque.
type UseCase struct {
	repo  Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewUseCase(repo Repository, c *cache.Cache, log *zap.Logger) *UseCase {
	return &UseCase{repo: repo, cache: c, log: log}
}

// Criar valida o carrinho contra o estado vivo de produtos e persiste a venda
// com os itens de retrato, tudo ou nada.
func (uc *UseCase) Criar(ctx context.Context, usuarioID uint, entrada CriarVendaInput) (*Venda, error) {
	if usuarioID == 0 {
		return nil, apperr.Validacao("ID do usuário deve ser um número inteiro positivo")
	}
	if len(entrada.Itens) == 0 {
		return nil, apperr.Validacao("A venda deve conter pelo menos um item")
	}
	if entrada.Cliente == "" {
		return nil, apperr.Validacao("Cliente é obrigatório")
	}
	if !entrada.MetodoPagamento.Valido() {
		return nil, apperr.Validacao("Método de pagamento inválido: %s", entrada.MetodoPagamento)
	}
	for _, item := range entrada.Itens {
		if item.Quantidade < 1 {
			return nil, apperr.Validacao("Quantidade do item deve ser no mínimo 1")
		}
		if item.Preco < 0 {
			return nil, apperr.Validacao("Preço do item não pode ser negativo")
		}
		if item.Nome == "" {
			return nil, apperr.Validacao("Nome do item é obrigatório")
		}
	}

	totalCalculado := totalDosItens(entrada.Itens)
	if math.Abs(entrada.Total-totalCalculado) > toleranciaPreco {
		uc.log.Warn("total divergente",
			zap.Float64("informado", entrada.Total), zap.Float64("calculado", totalCalculado))
		return nil, apperr.RegraDeNegocio(
			"Total informado (%v) não confere com o total calculado (%v)",
			entrada.Total, totalCalculado)
	}

	var criada *Venda
	err := uc.repo.EmTransacao(ctx, func(tx Repository) error {
		comprador, err := tx.BuscarUsuario(ctx, usuarioID)
		if err != nil {
			return err
		}
		if comprador == nil {
			return apperr.RegraDeNegocio("Usuário com ID %d não encontrado", usuarioID)
		}

		for _, item := range entrada.Itens {
			if item.ProdutoID <= 0 {
				return apperr.Validacao("ID do produto deve ser um número inteiro positivo")
			}

			p, err := tx.BuscarProduto(ctx, uint(item.ProdutoID))
			if err != nil {
				return err
			}
			if p == nil {
				return apperr.RegraDeNegocio("Produto com ID %d não encontrado", item.ProdutoID)
			}

			if p.Estoque < item.Quantidade {
				return apperr.RegraDeNegocio(
					"Estoque insuficiente para o produto %s (ID: %d)", p.Nome, p.ID)
			}
			if math.Abs(p.Preco-item.Preco) > toleranciaPreco {
				return apperr.RegraDeNegocio(
					"Preço do produto %s (ID: %d) divergente: enviado %v, atual %v",
					p.Nome, p.ID, item.Preco, p.Preco)
			}
			if p.Nome != item.Nome {
				return apperr.RegraDeNegocio(
					"Nome do produto (ID: %d) divergente: enviado %s, atual %s",
					p.ID, item.Nome, p.Nome)
			}

			// A baixa condicional refaz a checagem de estoque na escrita e
			// fecha a janela contra vendas concorrentes do mesmo produto.
			linhas, err := tx.BaixarEstoque(ctx, p.ID, item.Quantidade)
			if err != nil {
				return err
			}
			if linhas == 0 {
				return apperr.Conflito(
					"Falha ao atualizar o estoque do produto %s (ID: %d)", p.Nome, p.ID)
			}
		}

		v := &Venda{
			Cliente:         entrada.Cliente,
			Total:           entrada.Total,
			MetodoPagamento: entrada.MetodoPagamento,
			UsuarioID:       usuarioID,
		}
		for _, item := range entrada.Itens {
			v.Itens = append(v.Itens, ItemVenda{
				ProdutoID:  uint(item.ProdutoID),
				Nome:       item.Nome,
				Preco:      item.Preco,
				Quantidade: item.Quantidade,
			})
		}
		if err := tx.CriarVenda(ctx, v); err != nil {
			return err
		}
		criada = v
		return nil
	})
	if err != nil {
		if apperr.EhTipo(err, apperr.TipoInterno) {
			uc.log.Error("erro ao criar venda", zap.Error(err))
		} else {
			uc.log.Warn("venda rejeitada", zap.Uint("usuarioID", usuarioID), zap.Error(err))
		}
		return nil, err
	}

	uc.cache.Remover(ctx, chaveListaVendas)
	uc.log.Info("venda criada", zap.Uint("id", criada.ID), zap.Uint("usuarioID", usuarioID))

	completa, err := uc.repo.BuscarPorID(ctx, criada.ID)
	if err != nil || completa == nil {
		// A venda já está gravada; devolve o que temos em mãos.
		return criada, nil
	}
	return completa, nil
}

// totalDosItens soma preço × quantidade com aritmética decimal e arredonda
// para 2 casas, evitando que o acúmulo binário de float rejeite carrinho
// válido.
func totalDosItens(itens []ItemVendaInput) float64 {
	soma := decimal.Zero
	for _, item := range itens {
		soma = soma.Add(decimal.NewFromFloat(item.Preco).
			Mul(decimal.NewFromInt(int64(item.Quantidade))))
	}
	total, _ := soma.Round(2).Float64()
	return total
}

func (uc *UseCase) ListarTodas(ctx context.Context) ([]Venda, error) {
	var vendas []Venda
	if uc.cache.BuscarJSON(ctx, chaveListaVendas, &vendas) {
		return vendas, nil
	}

	vendas, err := uc.repo.ListarTodas(ctx)
	if err != nil {
		return nil, err
	}
	if vendas == nil {
		vendas = []Venda{}
	}

	uc.cache.GravarJSON(ctx, chaveListaVendas, vendas, cache.TTLPadrao)
	return vendas, nil
}

func (uc *UseCase) ListarPorUsuario(ctx context.Context, usuarioID uint) ([]Venda, error) {
	if usuarioID == 0 {
		return nil, apperr.Validacao("ID do usuário deve ser um número inteiro positivo")
	}
	vendas, err := uc.repo.ListarPorUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if vendas == nil {
		vendas = []Venda{}
	}
	return vendas, nil
}

func (uc *UseCase) BuscarPorID(ctx context.Context, id uint) (*Venda, error) {
	if id == 0 {
		return nil, apperr.Validacao("ID da venda deve ser um número inteiro positivo")
	}

	var v Venda
	if uc.cache.BuscarJSON(ctx, chaveVenda(id), &v) {
		return &v, nil
	}

	encontrada, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if encontrada == nil {
		return nil, apperr.NaoEncontrado("Venda não encontrada")
	}

	uc.cache.GravarJSON(ctx, chaveVenda(id), encontrada, cache.TTLPadrao)
	return encontrada, nil
}

func (uc *UseCase) Atualizar(ctx context.Context, id uint, entrada AtualizarVendaInput) (*Venda, error) {
	if id == 0 {
		return nil, apperr.Validacao("ID da venda deve ser um número inteiro positivo")
	}
	if entrada.MetodoPagamento != nil && !entrada.MetodoPagamento.Valido() {
		return nil, apperr.Validacao("Método de pagamento inválido: %s", *entrada.MetodoPagamento)
	}
	if entrada.Total != nil && *entrada.Total < 0 {
		return nil, apperr.Validacao("Total não pode ser negativo")
	}
	if entrada.Cliente != nil && *entrada.Cliente == "" {
		return nil, apperr.Validacao("Cliente não pode ser vazio")
	}

	v, err := uc.repo.AtualizarCampos(ctx, id, entrada)
	if err != nil {
		return nil, err
	}

	uc.cache.Remover(ctx, chaveListaVendas, chaveVenda(id))
	uc.log.Info("venda atualizada", zap.Uint("id", id))
	return v, nil
}

func (uc *UseCase) Deletar(ctx context.Context, id uint) error {
	if id == 0 {
		return apperr.Validacao("ID da venda deve ser um número inteiro positivo")
	}
	if err := uc.repo.Deletar(ctx, id); err != nil {
		return err
	}
	uc.cache.Remover(ctx, chaveListaVendas, chaveVenda(id))
	uc.log.Info("venda removida", zap.Uint("id", id))
	return nil
}
