// internal/produto/repository.go
package produto

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/banco"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(ctx context.Context, p *Produto) error {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		if banco.EhViolacaoUnicidade(err) {
			return apperr.RegraDeNegocio("Nome do produto já existe")
		}
		return apperr.Interno(err, "Erro ao criar produto")
	}
	return nil
}

func (r *Repository) Listar(ctx context.Context, f Filtro) ([]Produto, error) {
	consulta := r.DB.WithContext(ctx).Model(&Produto{})

	if f.Busca != "" {
		padrao := "%" + f.Busca + "%"
		consulta = consulta.Where("nome ILIKE ? OR descricao ILIKE ?", padrao, padrao)
	}
	if f.Categoria != "" {
		consulta = consulta.Where("categoria ILIKE ?", f.Categoria)
	}
	if f.PrecoMin != nil {
		consulta = consulta.Where("preco >= ?", *f.PrecoMin)
	}
	if f.PrecoMax != nil {
		consulta = consulta.Where("preco <= ?", *f.PrecoMax)
	}

	var produtos []Produto
	if err := consulta.Order("created_at DESC").Find(&produtos).Error; err != nil {
		return nil, apperr.Interno(err, "Erro ao buscar produtos")
	}
	return produtos, nil
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Produto, error) {
	var p Produto
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NaoEncontrado("Produto não encontrado")
		}
		return nil, apperr.Interno(err, "Erro ao buscar produto")
	}
	return &p, nil
}

// AtualizarCampos grava somente os campos presentes no mapa. Estoque omitido
// no corpo nunca é reescrito; uma baixa concorrente de venda entre a leitura
// e a gravação não pode ser desfeita por um update de catálogo.
func (r *Repository) AtualizarCampos(ctx context.Context, id uint, campos map[string]any) (*Produto, error) {
	if len(campos) > 0 {
		res := r.DB.WithContext(ctx).Model(&Produto{}).Where("id = ?", id).Updates(campos)
		if res.Error != nil {
			if banco.EhViolacaoUnicidade(res.Error) {
				return nil, apperr.RegraDeNegocio("Nome do produto já existe")
			}
			return nil, apperr.Interno(res.Error, "Erro ao atualizar produto")
		}
		if res.RowsAffected == 0 {
			return nil, apperr.NaoEncontrado("Produto não encontrado")
		}
	}
	return r.BuscarPorID(ctx, id)
}

// Deletar remove o produto. Produto referenciado por itens de venda não sai:
// o histórico de vendas guarda o vínculo e a FK barra a remoção.
func (r *Repository) Deletar(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Produto{}, id)
	if res.Error != nil {
		if banco.EhViolacaoChaveEstrangeira(res.Error) {
			return apperr.RegraDeNegocio("Produto possui itens de venda associados")
		}
		return apperr.Interno(res.Error, "Erro ao remover produto")
	}
	if res.RowsAffected == 0 {
		return apperr.NaoEncontrado("Produto não encontrado")
	}
	return nil
}

// Categorias lista os nomes de categoria em uso no catálogo.
func (r *Repository) Categorias(ctx context.Context) ([]string, error) {
	var categorias []string
	err := r.DB.WithContext(ctx).Model(&Produto{}).
		Distinct("categoria").Order("categoria").Pluck("categoria", &categorias).Error
	if err != nil {
		return nil, apperr.Interno(err, "Erro ao buscar categorias")
	}
	return categorias, nil
}
